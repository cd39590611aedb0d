package event

import (
	"github.com/dshills/typeahead/internal/editor"
	"github.com/dshills/typeahead/internal/engine/buffer"
)

// Topics published by the editing surface and the completion engine.
const (
	// TopicModeChanged is published when the editor mode changes.
	TopicModeChanged Topic = "input.mode.changed"

	// TopicContentChanged is published after a buffer edit.
	TopicContentChanged Topic = "buffer.content.changed"

	// TopicSessionStarted is published when a completion request is issued.
	TopicSessionStarted Topic = "completion.session.started"

	// TopicSessionNarrowed is published when an existing candidate set is
	// refiltered under a longer base without a new request.
	TopicSessionNarrowed Topic = "completion.session.narrowed"

	// TopicSessionPopulated is published when candidates arrive.
	TopicSessionPopulated Topic = "completion.session.populated"

	// TopicSessionStopped is published when a session resets to idle.
	TopicSessionStopped Topic = "completion.session.stopped"

	// TopicSessionApplied is published after a candidate is inserted.
	TopicSessionApplied Topic = "completion.session.applied"
)

// ModeChanged is published when the editor mode changes.
type ModeChanged struct {
	Meta Metadata

	// Previous is the mode before the change.
	Previous editor.Mode

	// Current is the new mode.
	Current editor.Mode
}

// EventTopic implements TopicProvider.
func (ModeChanged) EventTopic() Topic { return TopicModeChanged }

// ContentChanged is published after a buffer edit.
type ContentChanged struct {
	Meta Metadata

	// BufferID is the edited buffer.
	BufferID editor.BufferID

	// Revision is the buffer revision after the edit.
	Revision buffer.Revision

	// Mode is the editor mode at edit time.
	Mode editor.Mode
}

// EventTopic implements TopicProvider.
func (ContentChanged) EventTopic() Topic { return TopicContentChanged }

// SessionStarted is published when a completion request is issued.
type SessionStarted struct {
	Meta     Metadata
	BufferID editor.BufferID

	// Anchor is the token start the request was computed against.
	Anchor buffer.Point

	// Base is the prefix at request time.
	Base string
}

// EventTopic implements TopicProvider.
func (SessionStarted) EventTopic() Topic { return TopicSessionStarted }

// SessionNarrowed is published when the stored meet's base is updated in
// place without issuing a new request.
type SessionNarrowed struct {
	Meta Metadata

	// Base is the updated prefix.
	Base string
}

// EventTopic implements TopicProvider.
func (SessionNarrowed) EventTopic() Topic { return TopicSessionNarrowed }

// SessionPopulated is published when candidates arrive for the current meet.
type SessionPopulated struct {
	Meta Metadata

	// Count is the number of items in the session after arrival.
	Count int
}

// EventTopic implements TopicProvider.
func (SessionPopulated) EventTopic() Topic { return TopicSessionPopulated }

// SessionStopped is published when a session resets to idle.
type SessionStopped struct {
	Meta Metadata

	// Reason describes what stopped the session (e.g., "mode-exit").
	Reason string
}

// EventTopic implements TopicProvider.
func (SessionStopped) EventTopic() Topic { return TopicSessionStopped }

// SessionApplied is published after a candidate is inserted into the buffer.
type SessionApplied struct {
	Meta Metadata

	// Label is the inserted candidate text.
	Label string

	// Cursor is the cursor position after insertion.
	Cursor buffer.Point
}

// EventTopic implements TopicProvider.
func (SessionApplied) EventTopic() Topic { return TopicSessionApplied }
