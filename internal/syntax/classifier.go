package syntax

import "github.com/dshills/typeahead/internal/engine/buffer"

// Classifier answers scope queries against a buffer, carrying lexer state
// across lines. Line-boundary states are cached and invalidated whenever
// the buffer or its revision changes; one classifier can serve queries
// against multiple buffers in turn.
type Classifier struct {
	lang Language

	// states[i] is the lexer state at the end of line i, valid for buf
	// at revision.
	states   []LineState
	buf      *buffer.Buffer
	revision buffer.Revision
}

// NewClassifier creates a classifier for the given language.
func NewClassifier(lang Language) *Classifier {
	return &Classifier{lang: lang}
}

// Language returns the language this classifier lexes.
func (c *Classifier) Language() Language {
	return c.lang
}

// ScopeAt reports the scope of point p in buf. Out-of-range points
// classify as code.
func (c *Classifier) ScopeAt(buf *buffer.Buffer, p buffer.Point) Scope {
	if buf == nil || p.Line < 0 || p.Line >= buf.LineCount() {
		return Scope{}
	}
	prev := c.stateBefore(buf, p.Line)
	return Classify(c.lang, buf.LineText(p.Line), p.Column, prev)
}

// stateBefore returns the lexer state at the start of the given line,
// computing and caching end-of-line states as needed.
func (c *Classifier) stateBefore(buf *buffer.Buffer, line int) LineState {
	if line == 0 {
		return StateNormal
	}

	if c.buf != buf || c.revision != buf.Revision() {
		c.states = c.states[:0]
		c.buf = buf
		c.revision = buf.Revision()
	}

	state := StateNormal
	if n := len(c.states); n > 0 {
		if n >= line {
			return c.states[line-1]
		}
		state = c.states[n-1]
	}

	for i := len(c.states); i < line; i++ {
		state = EndState(c.lang, buf.LineText(i), state)
		c.states = append(c.states, state)
	}
	return c.states[line-1]
}
