package completion

import (
	"strings"

	"github.com/dshills/typeahead/internal/editor"
)

// State identifies where a session is in its lifecycle.
type State uint8

const (
	// StateIdle means no session is active.
	StateIdle State = iota

	// StateRequesting means a request is in flight and no candidates
	// have arrived for the current meet.
	StateRequesting

	// StatePopulated means at least one request has completed for the
	// current meet.
	StatePopulated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// Session holds the active meet, the accumulated candidate set, and the
// focused candidate index. It is mutated only by trigger decisions,
// candidate arrival, and the focus commands; all of that happens on the
// engine's event-processing goroutine.
//
// Invariants: focused is either -1 or a valid index into items; items is
// non-empty only after an arrival for the current meet; an idle session
// has no meet, no items, and no focus.
type Session struct {
	state    State
	bufferID editor.BufferID
	meet     Meet
	items    []Item
	focused  int
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{focused: -1}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// BufferID returns the buffer the session was started for.
func (s *Session) BufferID() editor.BufferID {
	return s.bufferID
}

// Meet returns the active meet, if any.
func (s *Session) Meet() (Meet, bool) {
	if s.state == StateIdle {
		return Meet{}, false
	}
	return s.meet, true
}

// Items returns the accumulated candidate set.
func (s *Session) Items() []Item {
	return s.items
}

// Focused returns the focused candidate, if any.
func (s *Session) Focused() (Item, bool) {
	if s.focused < 0 || s.focused >= len(s.items) {
		return Item{}, false
	}
	return s.items[s.focused], true
}

// FocusedIndex returns the focused index, or -1 when nothing is focused.
func (s *Session) FocusedIndex() int {
	if s.focused >= len(s.items) {
		return -1
	}
	return s.focused
}

// Start replaces the session wholesale: new meet, empty candidate set,
// cleared focus. The caller fires the request effect.
func (s *Session) Start(id editor.BufferID, m Meet) {
	s.state = StateRequesting
	s.bufferID = id
	s.meet = m
	s.items = nil
	s.focused = -1
}

// Narrow updates the stored meet in place to the newly derived one,
// leaving items and focus untouched. No-op on an idle session.
func (s *Session) Narrow(m Meet) {
	if s.state == StateIdle {
		return
	}
	s.meet = m
}

// Stop resets the session to idle. Idempotent.
func (s *Session) Stop() {
	s.state = StateIdle
	s.bufferID = 0
	s.meet = Meet{}
	s.items = nil
	s.focused = -1
}

// Arrive appends a candidate batch tagged with the meet it was requested
// for. Batches whose tag no longer equals the current meet are stale and
// discarded; the session is unchanged. Returns true if the batch was
// accepted. max caps the stored candidate count; zero means no cap.
func (s *Session) Arrive(tag Meet, items []Item, max int) bool {
	if s.state == StateIdle || !s.meet.Equal(tag) {
		return false
	}

	s.items = append(s.items, items...)
	if max > 0 && len(s.items) > max {
		s.items = s.items[:max]
		if s.focused >= max {
			s.focused = -1
		}
	}
	s.state = StatePopulated
	return true
}

// Visible returns the indices of items whose label matches the current
// base, in order. Narrowing refilters this view without touching items.
func (s *Session) Visible() []int {
	if s.state == StateIdle {
		return nil
	}
	visible := make([]int, 0, len(s.items))
	for i, item := range s.items {
		if matchesBase(item.Label, s.meet.Base) {
			visible = append(visible, i)
		}
	}
	return visible
}

// FocusNext moves focus to the next visible candidate, wrapping at the
// end of the list. With no focus, the first visible candidate is
// focused. No-op when nothing is visible.
func (s *Session) FocusNext() {
	s.moveFocus(1)
}

// FocusPrev moves focus to the previous visible candidate, wrapping at
// the start of the list. With no focus, the last visible candidate is
// focused.
func (s *Session) FocusPrev() {
	s.moveFocus(-1)
}

func (s *Session) moveFocus(dir int) {
	visible := s.Visible()
	if len(visible) == 0 {
		return
	}

	// Position of the current focus within the visible list, if any.
	pos := -1
	for i, idx := range visible {
		if idx == s.focused {
			pos = i
			break
		}
	}

	if pos < 0 {
		if dir > 0 {
			s.focused = visible[0]
		} else {
			s.focused = visible[len(visible)-1]
		}
		return
	}

	pos = (pos + dir + len(visible)) % len(visible)
	s.focused = visible[pos]
}

// matchesBase reports a case-insensitive prefix match of base on label.
func matchesBase(label, base string) bool {
	if base == "" {
		return true
	}
	if len(label) < len(base) {
		return false
	}
	return strings.EqualFold(label[:len(base)], base)
}
