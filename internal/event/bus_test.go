package event

import (
	"testing"

	"github.com/dshills/typeahead/internal/editor"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := NewBus()

	var got []any
	b.Subscribe(TopicModeChanged, func(ev any) { got = append(got, ev) })
	b.Subscribe(TopicContentChanged, func(ev any) { t.Error("wrong topic delivered") })

	ev := ModeChanged{Meta: NewMetadata("test"), Previous: editor.ModeNormal, Current: editor.ModeInsert}
	b.Publish(ev)

	if len(got) != 1 {
		t.Fatalf("delivered %d events, want 1", len(got))
	}
	mc, ok := got[0].(ModeChanged)
	if !ok || mc.Current != editor.ModeInsert {
		t.Errorf("payload = %#v", got[0])
	}
}

func TestPublishOrderAndUnsubscribe(t *testing.T) {
	b := NewBus()

	var order []int
	b.Subscribe(TopicSessionStopped, func(any) { order = append(order, 1) })
	sub := b.Subscribe(TopicSessionStopped, func(any) { order = append(order, 2) })
	b.Subscribe(TopicSessionStopped, func(any) { order = append(order, 3) })

	b.Unsubscribe(sub)
	b.Publish(SessionStopped{Meta: NewMetadata("test"), Reason: "test"})

	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("order = %v, want [1 3]", order)
	}
}

func TestPublishNonEventDropped(t *testing.T) {
	b := NewBus()
	b.Subscribe(TopicModeChanged, func(any) { t.Error("should not deliver") })
	b.Publish("not an event") // must not panic or deliver
}

func TestMetadataStamped(t *testing.T) {
	m1 := NewMetadata("engine")
	m2 := NewMetadata("engine")
	if m1.ID == "" || m1.ID == m2.ID {
		t.Errorf("IDs not unique: %q vs %q", m1.ID, m2.ID)
	}
	if m1.Source != "engine" {
		t.Errorf("Source = %q", m1.Source)
	}
	if m1.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}
