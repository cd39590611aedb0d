package completion

import (
	"github.com/dshills/typeahead/internal/engine/buffer"
)

// Meet is the anchor position and prefix a completion request or
// narrowing is computed against. A meet is immutable once derived; a new
// meet always replaces, never mutates, the old one.
type Meet struct {
	// Location is the cursor position at derivation time.
	Location buffer.Point

	// Anchor is the start of the token being completed. Deletions and
	// insertions during application are relative to this point.
	Anchor buffer.Point

	// Base is the prefix text between Anchor and Location.
	Base string
}

// Equal reports component-wise equality.
func (m Meet) Equal(o Meet) bool {
	return m == o
}

// SameAnchor reports whether o is the same meet apart from its base:
// identical anchor on the same line. The trigger policy uses this to
// distinguish narrowing from relocation.
func (m Meet) SameAnchor(o Meet) bool {
	return m.Anchor == o.Anchor && m.Location.Line == o.Location.Line
}

// DeriveMeet computes the meet for the given cursor position from the
// text of the cursor's line. It scans backward from the cursor to the
// start of the contiguous identifier run; if the cursor is at start of
// line or preceded by a non-identifier byte there is no meet. Pure
// function of its arguments.
func DeriveMeet(line string, cursor buffer.Point) (Meet, bool) {
	col := cursor.Column
	if col < 0 || col > len(line) {
		return Meet{}, false
	}

	start := col
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}
	if start == col {
		return Meet{}, false
	}

	return Meet{
		Location: cursor,
		Anchor:   buffer.Point{Line: cursor.Line, Column: start},
		Base:     line[start:col],
	}, true
}

// isWordByte returns true if the byte is part of an identifier run.
func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}
