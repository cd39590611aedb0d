// Package event provides the typed publish/subscribe bus connecting the
// editing surface to the completion engine. Delivery is synchronous on
// the publisher's goroutine; the engine serializes its own transitions,
// so the bus needs no async dispatch of its own.
package event

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic is a hierarchical event type (e.g., "input.mode.changed").
type Topic string

// TopicProvider is implemented by every event payload.
type TopicProvider interface {
	EventTopic() Topic
}

// Metadata is standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the module that published the event.
	Source string
}

// NewMetadata creates metadata stamped with a fresh ID.
func NewMetadata(source string) Metadata {
	return Metadata{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Source:    source,
	}
}

// Handler receives published events.
type Handler func(event any)

// Subscription identifies an active subscription for cancellation.
type Subscription struct {
	topic Topic
	id    uint64
}

// Bus delivers events to topic subscribers. Safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic][]entry
	nextID uint64
}

type entry struct {
	id uint64
	fn Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]entry)}
}

// Subscribe registers a handler for the given topic.
func (b *Bus) Subscribe(t Topic, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[t] = append(b.subs[t], entry{id: b.nextID, fn: h})
	return Subscription{topic: t, id: b.nextID}
}

// Unsubscribe removes a subscription. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.subs[sub.topic]
	for i, e := range entries {
		if e.id == sub.id {
			b.subs[sub.topic] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to all subscribers of its topic, in
// subscription order, on the caller's goroutine. Events that do not
// implement TopicProvider are dropped.
func (b *Bus) Publish(event any) {
	tp, ok := event.(TopicProvider)
	if !ok {
		return
	}

	b.mu.RLock()
	entries := b.subs[tp.EventTopic()]
	handlers := make([]Handler, len(entries))
	for i, e := range entries {
		handlers[i] = e.fn
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
