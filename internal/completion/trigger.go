package completion

import (
	"github.com/dshills/typeahead/internal/config"
	"github.com/dshills/typeahead/internal/syntax"
)

// Decision is the trigger policy outcome for a derived meet.
type Decision uint8

const (
	// DecideStop terminates the session: no meet exists or the context
	// disallows completion.
	DecideStop Decision = iota

	// DecideStart issues a fresh asynchronous candidate request.
	DecideStart

	// DecideNarrow reuses the already-fetched candidates under an
	// updated base; no new request is issued.
	DecideNarrow
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecideStop:
		return "stop"
	case DecideStart:
		return "start"
	case DecideNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Decide maps the previous and newly derived meet to a trigger decision.
//
// A candidate meet that shares the previous meet's anchor but differs in
// base means the user kept typing (or erasing) within the same token:
// narrowing suffices. Any other change invalidates the candidate set and
// starts over.
func Decide(prev, next *Meet) Decision {
	if next == nil {
		return DecideStop
	}
	if prev == nil {
		return DecideStart
	}
	if prev.SameAnchor(*next) && prev.Base != next.Base {
		return DecideNarrow
	}
	return DecideStart
}

// Switches are the three independent eligibility toggles.
type Switches struct {
	// Comments allows triggering inside comments.
	Comments bool

	// Strings allows triggering inside string literals.
	Strings bool

	// Code allows triggering when neither comment nor string applies.
	Code bool
}

// SwitchesFromConfig extracts the eligibility switches.
func SwitchesFromConfig(c config.CompletionConfig) Switches {
	return Switches{
		Comments: c.InComments,
		Strings:  c.InStrings,
		Code:     c.InCode,
	}
}

// Allows reports whether the syntax scope at the cursor permits
// completion. Each switch covers exactly its own category; Code applies
// only when neither comment nor string holds.
func (s Switches) Allows(scope syntax.Scope) bool {
	if scope.InComment && s.Comments {
		return true
	}
	if scope.InString && s.Strings {
		return true
	}
	return scope.InCode() && s.Code
}
