package completion

import (
	"errors"

	"github.com/dshills/typeahead/internal/event"
	"github.com/dshills/typeahead/internal/textinput"
)

var (
	// ErrNoFocus is returned by Accept when no candidate is focused.
	ErrNoFocus = errors.New("completion: no focused candidate")

	// ErrNoSession is returned by Accept when no session is active.
	ErrNoSession = errors.New("completion: no active session")

	// ErrCursorMoved is returned by Accept when the cursor has left the
	// meet's line or moved before its anchor since derivation.
	ErrCursorMoved = errors.New("completion: cursor moved away from meet")

	// ErrBufferChanged is returned by Accept when the active buffer is no
	// longer the one the session was started for.
	ErrBufferChanged = errors.New("completion: active buffer changed")
)

// Accept applies the focused candidate at the session's meet: the typed
// base is erased with backspaces and the candidate label is inserted in
// its place, leaving the cursor after the inserted text. An accept with
// no focused candidate is a no-op that leaves the session untouched;
// any attempted application, applied or rejected, ends the session.
//
// The deletion count is the byte distance from the anchor to the
// current cursor column, so characters typed after the request was
// issued are erased along with the base. If the cursor has left the
// meet's line or sits before the anchor, the buffer cannot be restored
// to a known shape and the application is refused.
func (e *Engine) Accept() error {
	m, active := e.session.Meet()
	if !active {
		return ErrNoSession
	}

	item, ok := e.session.Focused()
	if !ok {
		return ErrNoFocus
	}

	reason := "rejected"
	defer func() { e.stop(reason) }()

	id, ok := e.surface.Active()
	if !ok || id != e.session.BufferID() {
		return ErrBufferChanged
	}

	cursor := e.surface.PrimaryCursor(id)
	if cursor.Line != m.Anchor.Line || cursor.Column < m.Anchor.Column {
		return ErrCursorMoved
	}
	reason = "applied"

	if n := cursor.Column - m.Anchor.Column; n > 0 {
		e.input.Repeat(n, textinput.KeyBackspace)
	}
	ictx := e.input.InsertString(item.Label)
	e.surface.SetPrimaryCursor(id, ictx.Primary())

	e.publish(event.SessionApplied{
		Meta:   event.NewMetadata("completion"),
		Label:  item.Label,
		Cursor: ictx.Primary(),
	})
	return nil
}
