// Package syntax classifies buffer positions as comment, string, or code.
//
// The classifier is a small per-line lexer that tracks only the constructs
// relevant to completion eligibility: line comments, block comments, and
// string literals. Multi-line constructs carry a LineState across line
// boundaries, the same scheme the renderer uses for highlighting.
package syntax

// Scope reports the syntactic context of a single buffer position.
type Scope struct {
	// InComment is true if the position is inside a line or block comment.
	InComment bool

	// InString is true if the position is inside a string literal.
	InString bool
}

// InCode returns true if the position is neither comment nor string.
func (s Scope) InCode() bool {
	return !s.InComment && !s.InString
}

// LineState is the lexer state at a line boundary.
type LineState uint8

const (
	// StateNormal means the line starts outside any multi-line construct.
	StateNormal LineState = iota

	// StateBlockComment means the line starts inside a block comment.
	StateBlockComment

	// StateRawString means the line starts inside a raw string literal.
	StateRawString
)

// String returns the state name.
func (s LineState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateBlockComment:
		return "block-comment"
	case StateRawString:
		return "raw-string"
	default:
		return "unknown"
	}
}
