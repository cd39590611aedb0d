// Package textinput is the low-level text mutation primitive. The
// completion engine never edits buffers directly; it issues backspace
// repeats and string inserts through a Sink and reads the resulting
// cursor back from the returned Context.
package textinput

import (
	"github.com/dshills/typeahead/internal/editor"
	"github.com/dshills/typeahead/internal/engine/buffer"
)

// Key names an input key understood by Repeat.
type Key string

// KeyBackspace deletes one byte column backward.
const KeyBackspace Key = "<BS>"

// Context is the result of an input operation. It exposes the cursor set
// after the edit; callers use only the cursors to update editor state.
type Context struct {
	// Cursors are the resulting cursor positions, primary first.
	Cursors []buffer.Point
}

// Primary returns the primary cursor after the edit.
func (c Context) Primary() buffer.Point {
	if len(c.Cursors) == 0 {
		return buffer.Point{}
	}
	return c.Cursors[0]
}

// Sink applies input operations to the active buffer of an editor.
type Sink struct {
	ed *editor.Editor
}

// NewSink creates a sink bound to the given editor.
func NewSink(ed *editor.Editor) *Sink {
	return &Sink{ed: ed}
}

// Repeat applies key n times at the primary cursor of the active buffer.
// Backspace stops at the start of the line; it never joins lines.
func (s *Sink) Repeat(n int, key Key) Context {
	id, ok := s.ed.Active()
	if !ok || key != KeyBackspace || n <= 0 {
		return s.current()
	}

	buf := s.ed.Buffer(id)
	cur := s.ed.PrimaryCursor(id)

	start := cur
	start.Column -= n
	if start.Column < 0 {
		start.Column = 0
	}
	buf.Delete(start, cur)
	s.ed.SetPrimaryCursor(id, start)
	return s.current()
}

// InsertString inserts text at the primary cursor of the active buffer
// and advances the cursor past the inserted text.
func (s *Sink) InsertString(text string) Context {
	id, ok := s.ed.Active()
	if !ok || text == "" {
		return s.current()
	}

	buf := s.ed.Buffer(id)
	end := buf.Insert(s.ed.PrimaryCursor(id), text)
	s.ed.SetPrimaryCursor(id, end)
	return s.current()
}

// current snapshots the cursor set of the active buffer.
func (s *Sink) current() Context {
	id, ok := s.ed.Active()
	if !ok {
		return Context{}
	}
	return Context{Cursors: []buffer.Point{s.ed.PrimaryCursor(id)}}
}
