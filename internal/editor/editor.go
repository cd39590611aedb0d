// Package editor provides the editing surface the completion engine
// observes: open buffers, per-buffer primary cursors, and the current
// editing mode. It owns no completion state of its own.
package editor

import (
	"github.com/dshills/typeahead/internal/engine/buffer"
)

// BufferID identifies an open buffer.
type BufferID int64

// Mode is the current editing mode.
type Mode string

// Editing modes. Completion triggers only apply in insert mode.
const (
	ModeNormal Mode = "normal"
	ModeInsert Mode = "insert"
)

// handle pairs a buffer with its surface-level state.
type handle struct {
	buf    *buffer.Buffer
	uri    string
	cursor buffer.Point
}

// Editor is the editing surface. It is not safe for concurrent use;
// all access happens on the event-processing goroutine.
type Editor struct {
	buffers map[BufferID]*handle
	nextID  BufferID
	active  BufferID
	mode    Mode
}

// New creates an editor with no open buffers, in normal mode.
func New() *Editor {
	return &Editor{
		buffers: make(map[BufferID]*handle),
		mode:    ModeNormal,
	}
}

// Open adds a buffer with the given URI and initial text, makes it the
// active buffer, and returns its ID.
func (e *Editor) Open(uri, text string) BufferID {
	e.nextID++
	id := e.nextID
	e.buffers[id] = &handle{
		buf: buffer.NewFromString(text),
		uri: uri,
	}
	e.active = id
	return id
}

// Close removes a buffer. Closing the active buffer leaves no buffer active.
func (e *Editor) Close(id BufferID) {
	delete(e.buffers, id)
	if e.active == id {
		e.active = 0
	}
}

// Active returns the active buffer ID, or false if no buffer is active.
func (e *Editor) Active() (BufferID, bool) {
	if e.active == 0 {
		return 0, false
	}
	if _, ok := e.buffers[e.active]; !ok {
		return 0, false
	}
	return e.active, true
}

// SetActive makes the given buffer the active one, if it is open.
func (e *Editor) SetActive(id BufferID) {
	if _, ok := e.buffers[id]; ok {
		e.active = id
	}
}

// Buffer returns the buffer for the given ID, or nil if not open.
func (e *Editor) Buffer(id BufferID) *buffer.Buffer {
	h, ok := e.buffers[id]
	if !ok {
		return nil
	}
	return h.buf
}

// URI returns the URI of the given buffer. Used for diagnostics only.
func (e *Editor) URI(id BufferID) string {
	h, ok := e.buffers[id]
	if !ok {
		return ""
	}
	return h.uri
}

// PrimaryCursor returns the primary cursor of the given buffer.
func (e *Editor) PrimaryCursor(id BufferID) buffer.Point {
	h, ok := e.buffers[id]
	if !ok {
		return buffer.Point{}
	}
	return h.cursor
}

// SetPrimaryCursor moves the primary cursor of the given buffer,
// clamped to the buffer bounds.
func (e *Editor) SetPrimaryCursor(id BufferID, p buffer.Point) {
	h, ok := e.buffers[id]
	if !ok {
		return
	}
	h.cursor = h.buf.Clamp(p)
}

// LineText returns the text of the given line in the given buffer.
func (e *Editor) LineText(id BufferID, line int) string {
	h, ok := e.buffers[id]
	if !ok {
		return ""
	}
	return h.buf.LineText(line)
}

// Mode returns the current editing mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode changes the editing mode and returns the previous mode.
func (e *Editor) SetMode(m Mode) Mode {
	prev := e.mode
	e.mode = m
	return prev
}
