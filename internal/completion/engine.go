package completion

import (
	"context"

	"github.com/dshills/typeahead/internal/config"
	"github.com/dshills/typeahead/internal/editor"
	"github.com/dshills/typeahead/internal/engine/buffer"
	"github.com/dshills/typeahead/internal/event"
	"github.com/dshills/typeahead/internal/syntax"
	"github.com/dshills/typeahead/internal/textinput"
)

// Surface is the editing surface the engine observes. *editor.Editor
// satisfies it.
type Surface interface {
	Active() (editor.BufferID, bool)
	Buffer(id editor.BufferID) *buffer.Buffer
	PrimaryCursor(id editor.BufferID) buffer.Point
	SetPrimaryCursor(id editor.BufferID, p buffer.Point)
	LineText(id editor.BufferID, line int) string
	URI(id editor.BufferID) string
}

// Classifier reports the syntax scope of a buffer position.
type Classifier interface {
	ScopeAt(buf *buffer.Buffer, p buffer.Point) syntax.Scope
}

// Input is the text mutation primitive used to apply candidates.
type Input interface {
	Repeat(n int, key textinput.Key) textinput.Context
	InsertString(text string) textinput.Context
}

// Arrival carries a provider result back into the engine, tagged with
// the meet it was requested for.
type Arrival struct {
	Meet  Meet
	Items []Item
}

// Engine is the completion trigger state machine. All methods except the
// internal request effect must be called from a single event-processing
// goroutine; provider results are handed back through Arrivals and fed
// to HandleArrival on that same goroutine.
type Engine struct {
	surface  Surface
	classify Classifier
	input    Input
	provider Provider
	bus      *event.Bus

	enabled  bool
	switches Switches
	maxItems int

	session  *Session
	arrivals chan Arrival
}

// Option configures an Engine.
type Option func(*Engine)

// WithBus attaches an event bus for session lifecycle events.
func WithBus(b *event.Bus) Option {
	return func(e *Engine) {
		e.bus = b
	}
}

// WithConfig applies completion configuration at construction.
func WithConfig(c config.CompletionConfig) Option {
	return func(e *Engine) {
		e.applyConfig(c)
	}
}

// NewEngine creates an engine over the given collaborators.
func NewEngine(surface Surface, classify Classifier, input Input, provider Provider, opts ...Option) *Engine {
	e := &Engine{
		surface:  surface,
		classify: classify,
		input:    input,
		provider: provider,
		enabled:  true,
		switches: Switches{Code: true},
		maxItems: 100,
		session:  NewSession(),
		arrivals: make(chan Arrival, 16),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus != nil {
		e.subscribe()
	}
	return e
}

// subscribe wires the engine to the surface lifecycle topics. The bus
// delivers synchronously on the publisher's goroutine, which is the
// event-processing goroutine, so no extra serialization is needed.
func (e *Engine) subscribe() {
	e.bus.Subscribe(event.TopicModeChanged, func(ev any) {
		if mc, ok := ev.(event.ModeChanged); ok {
			e.ModeChanged(mc.Previous, mc.Current)
		}
	})
	e.bus.Subscribe(event.TopicContentChanged, func(ev any) {
		if cc, ok := ev.(event.ContentChanged); ok {
			e.ContentChanged(cc.Mode)
		}
	})
}

// SetConfig applies updated configuration. Called on the event-processing
// goroutine (e.g., from a config reload callback); it affects the next
// trigger evaluation, not the current session.
func (e *Engine) SetConfig(c config.CompletionConfig) {
	e.applyConfig(c)
}

func (e *Engine) applyConfig(c config.CompletionConfig) {
	e.enabled = c.Enabled
	e.switches = SwitchesFromConfig(c)
	e.maxItems = c.MaxItems
}

// Session exposes the session state for rendering.
func (e *Engine) Session() *Session {
	return e.session
}

// Arrivals is the queue of provider results awaiting HandleArrival.
func (e *Engine) Arrivals() <-chan Arrival {
	return e.arrivals
}

// ModeChanged reacts to an editor mode transition. Leaving insert mode
// stops the session; entering insert mode re-evaluates the trigger.
func (e *Engine) ModeChanged(prev, cur editor.Mode) {
	if cur != editor.ModeInsert {
		e.stop("mode-exit")
		return
	}
	e.evaluate()
}

// ContentChanged reacts to a buffer edit. Edits outside insert mode need
// no state change; edits in insert mode re-evaluate the trigger.
func (e *Engine) ContentChanged(mode editor.Mode) {
	if mode != editor.ModeInsert {
		return
	}
	e.evaluate()
}

// HandleArrival folds a provider result into the session. Arrivals
// tagged with a meet that is no longer current are stale and silently
// discarded.
func (e *Engine) HandleArrival(a Arrival) {
	if !e.session.Arrive(a.Meet, a.Items, e.maxItems) {
		return
	}
	e.publish(event.SessionPopulated{
		Meta:  event.NewMetadata("completion"),
		Count: len(e.session.Items()),
	})
}

// Cancel stops the session without applying anything.
func (e *Engine) Cancel() {
	e.stop("cancelled")
}

// SelectNext focuses the next visible candidate, wrapping at the end.
func (e *Engine) SelectNext() {
	e.session.FocusNext()
}

// SelectPrev focuses the previous visible candidate, wrapping at the start.
func (e *Engine) SelectPrev() {
	e.session.FocusPrev()
}

// evaluate runs the eligibility check and the trigger decision table
// against the freshly derived meet.
func (e *Engine) evaluate() {
	if !e.enabled {
		e.stop("disabled")
		return
	}

	id, ok := e.surface.Active()
	if !ok {
		e.stop("no-buffer")
		return
	}

	cursor := e.surface.PrimaryCursor(id)
	scope := e.classify.ScopeAt(e.surface.Buffer(id), cursor)
	if !e.switches.Allows(scope) {
		e.stop("ineligible")
		return
	}

	next, ok := DeriveMeet(e.surface.LineText(id, cursor.Line), cursor)
	if !ok {
		e.stop("no-meet")
		return
	}

	var prev *Meet
	if m, active := e.session.Meet(); active && e.session.BufferID() == id {
		prev = &m
	}

	switch Decide(prev, &next) {
	case DecideNarrow:
		e.session.Narrow(next)
		e.publish(event.SessionNarrowed{
			Meta: event.NewMetadata("completion"),
			Base: next.Base,
		})

	case DecideStart:
		e.session.Start(id, next)
		e.publish(event.SessionStarted{
			Meta:     event.NewMetadata("completion"),
			BufferID: id,
			Anchor:   next.Anchor,
			Base:     next.Base,
		})
		e.request(id, next)

	case DecideStop:
		e.stop("no-meet")
	}
}

// request fires the asynchronous candidate request effect. The result
// re-enters through the arrivals queue; a failed or unresolved request
// simply never arrives, leaving the session in Requesting until a later
// trigger supersedes it. There is no retry and no timeout at this layer.
func (e *Engine) request(id editor.BufferID, m Meet) {
	if e.provider == nil {
		return
	}

	req := Request{
		BufferID: id,
		URI:      e.surface.URI(id),
		Text:     e.surface.Buffer(id).Text(),
		Meet:     m,
	}

	go func() {
		items, err := e.provider.Complete(context.Background(), req)
		if err != nil {
			return
		}
		copied := make([]Item, len(items))
		copy(copied, items)

		select {
		case e.arrivals <- Arrival{Meet: m, Items: copied}:
		default:
			// Queue full: treated as a request that never resolved.
		}
	}()
}

// stop resets the session to idle. Stopping an idle session is a no-op
// and publishes nothing.
func (e *Engine) stop(reason string) {
	if e.session.State() == StateIdle {
		return
	}
	e.session.Stop()
	e.publish(event.SessionStopped{
		Meta:   event.NewMetadata("completion"),
		Reason: reason,
	})
}

func (e *Engine) publish(ev any) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(ev)
}
