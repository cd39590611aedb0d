package textinput

import (
	"testing"

	"github.com/dshills/typeahead/internal/editor"
	"github.com/dshills/typeahead/internal/engine/buffer"
)

func newSurface(t *testing.T, text string, cursor buffer.Point) (*editor.Editor, *Sink) {
	t.Helper()
	ed := editor.New()
	id := ed.Open("file:///t", text)
	ed.SetPrimaryCursor(id, cursor)
	return ed, NewSink(ed)
}

func TestInsertString(t *testing.T) {
	ed, sink := newSurface(t, "helo", buffer.Point{Line: 0, Column: 3})
	ctx := sink.InsertString("l")

	id, _ := ed.Active()
	if got := ed.Buffer(id).Text(); got != "hello" {
		t.Errorf("text = %q, want %q", got, "hello")
	}
	if got := ctx.Primary(); got != (buffer.Point{Line: 0, Column: 4}) {
		t.Errorf("cursor = %v, want (0:4)", got)
	}
}

func TestRepeatBackspace(t *testing.T) {
	ed, sink := newSurface(t, "abcdef", buffer.Point{Line: 0, Column: 5})
	ctx := sink.Repeat(3, KeyBackspace)

	id, _ := ed.Active()
	if got := ed.Buffer(id).Text(); got != "abf" {
		t.Errorf("text = %q, want %q", got, "abf")
	}
	if got := ctx.Primary(); got != (buffer.Point{Line: 0, Column: 2}) {
		t.Errorf("cursor = %v, want (0:2)", got)
	}
}

func TestBackspaceStopsAtLineStart(t *testing.T) {
	ed, sink := newSurface(t, "ab\ncd", buffer.Point{Line: 1, Column: 1})
	sink.Repeat(5, KeyBackspace)

	id, _ := ed.Active()
	if got := ed.Buffer(id).Text(); got != "ab\nd" {
		t.Errorf("text = %q, want %q (no line join)", got, "ab\nd")
	}
}

func TestNoActiveBuffer(t *testing.T) {
	sink := NewSink(editor.New())
	ctx := sink.InsertString("x")
	if len(ctx.Cursors) != 0 {
		t.Errorf("expected empty cursor set, got %v", ctx.Cursors)
	}
	ctx = sink.Repeat(1, KeyBackspace)
	if len(ctx.Cursors) != 0 {
		t.Errorf("expected empty cursor set, got %v", ctx.Cursors)
	}
}
