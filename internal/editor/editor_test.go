package editor

import (
	"testing"

	"github.com/dshills/typeahead/internal/engine/buffer"
)

func TestOpenAndActive(t *testing.T) {
	e := New()
	if _, ok := e.Active(); ok {
		t.Error("new editor should have no active buffer")
	}

	id := e.Open("file:///tmp/a.go", "package a")
	active, ok := e.Active()
	if !ok || active != id {
		t.Fatalf("Active = (%d, %v), want (%d, true)", active, ok, id)
	}
	if got := e.URI(id); got != "file:///tmp/a.go" {
		t.Errorf("URI = %q", got)
	}
	if got := e.LineText(id, 0); got != "package a" {
		t.Errorf("LineText = %q", got)
	}
}

func TestCloseActiveBuffer(t *testing.T) {
	e := New()
	id := e.Open("file:///a", "x")
	e.Close(id)
	if _, ok := e.Active(); ok {
		t.Error("closed buffer should not remain active")
	}
	if e.Buffer(id) != nil {
		t.Error("Buffer should return nil after close")
	}
}

func TestPrimaryCursorClamped(t *testing.T) {
	e := New()
	id := e.Open("file:///a", "ab\ncd")
	e.SetPrimaryCursor(id, buffer.Point{Line: 9, Column: 9})
	if got := e.PrimaryCursor(id); got != (buffer.Point{Line: 1, Column: 2}) {
		t.Errorf("cursor = %v, want (1:2)", got)
	}
}

func TestModeTransitions(t *testing.T) {
	e := New()
	if e.Mode() != ModeNormal {
		t.Errorf("initial mode = %q, want normal", e.Mode())
	}
	prev := e.SetMode(ModeInsert)
	if prev != ModeNormal || e.Mode() != ModeInsert {
		t.Errorf("SetMode: prev=%q mode=%q", prev, e.Mode())
	}
}

func TestUnknownBufferAccess(t *testing.T) {
	e := New()
	if got := e.LineText(42, 0); got != "" {
		t.Errorf("LineText on unknown buffer = %q", got)
	}
	if got := e.PrimaryCursor(42); !got.IsZero() {
		t.Errorf("PrimaryCursor on unknown buffer = %v", got)
	}
	e.SetPrimaryCursor(42, buffer.Point{Line: 1}) // must not panic
}
