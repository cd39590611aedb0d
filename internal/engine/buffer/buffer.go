package buffer

import (
	"strings"
	"sync/atomic"
)

// Buffer is a line-indexed text buffer.
//
// Lines are stored without their trailing newline. A buffer always has at
// least one line; the empty buffer has a single empty line. Buffer is not
// safe for concurrent use; callers serialize access through a single
// event-processing goroutine.
type Buffer struct {
	lines    []string
	revision atomic.Uint64
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// NewFromString creates a buffer holding the given text.
func NewFromString(s string) *Buffer {
	return &Buffer{lines: strings.Split(s, "\n")}
}

// Text returns the full buffer contents.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineText returns the text of the given line without its newline.
// Out-of-range lines return the empty string.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the byte length of the given line.
func (b *Buffer) LineLen(line int) int {
	return len(b.LineText(line))
}

// Revision returns the current revision of the buffer.
func (b *Buffer) Revision() Revision {
	return Revision(b.revision.Load())
}

// Insert inserts text at the given point and returns the point just after
// the inserted text. Text may contain newlines. The point is clamped to
// the buffer bounds.
func (b *Buffer) Insert(p Point, text string) Point {
	p = b.Clamp(p)
	line := b.lines[p.Line]
	head, tail := line[:p.Column], line[p.Column:]

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.lines[p.Line] = head + text + tail
		b.bump()
		return Point{Line: p.Line, Column: p.Column + len(text)}
	}

	inserted := make([]string, len(parts))
	copy(inserted, parts)
	inserted[0] = head + parts[0]
	last := len(inserted) - 1
	end := Point{Line: p.Line + last, Column: len(inserted[last])}
	inserted[last] += tail

	b.lines = append(b.lines[:p.Line], append(inserted, b.lines[p.Line+1:]...)...)
	b.bump()
	return end
}

// Delete removes the text between start and end. Both points are clamped;
// if start is not before end the buffer is unchanged.
func (b *Buffer) Delete(start, end Point) {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if !start.Before(end) {
		return
	}

	head := b.lines[start.Line][:start.Column]
	tail := b.lines[end.Line][end.Column:]
	joined := head + tail

	b.lines = append(b.lines[:start.Line], append([]string{joined}, b.lines[end.Line+1:]...)...)
	b.bump()
}

// Replace deletes the text between start and end and inserts text at start,
// returning the point just after the inserted text.
func (b *Buffer) Replace(start, end Point, text string) Point {
	b.Delete(start, end)
	return b.Insert(start, text)
}

// Clamp returns the nearest valid point in the buffer.
func (b *Buffer) Clamp(p Point) Point {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if l := len(b.lines[p.Line]); p.Column > l {
		p.Column = l
	}
	return p
}

// IsEmpty returns true if the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

func (b *Buffer) bump() {
	b.revision.Add(1)
}
