package completion

import (
	"context"

	"github.com/dshills/typeahead/internal/editor"
)

// Item is a single completion candidate. The engine treats it as opaque
// beyond Label, which is the exact text inserted on acceptance. Items
// are owned by their provider and copied into session state on arrival.
type Item struct {
	// Label is the text inserted when the item is accepted.
	Label string

	// Kind categorizes the candidate (provider-specific, display only).
	Kind string

	// Detail provides additional provider-specific information.
	Detail string
}

// Request describes one candidate request. Text is a snapshot of the
// buffer contents at issue time so providers can work without touching
// live editor state.
type Request struct {
	// BufferID is the buffer the request was issued for.
	BufferID editor.BufferID

	// URI is the buffer URI, for provider diagnostics only.
	URI string

	// Text is the buffer contents at request time.
	Text string

	// Meet is the meet the candidates are computed against. Arrivals
	// carry it back as the staleness tag.
	Meet Meet
}

// Provider supplies completion candidates. Complete may block; the
// engine invokes it on its own goroutine and discards results whose
// tagged meet is no longer current.
type Provider interface {
	Complete(ctx context.Context, req Request) ([]Item, error)
}
