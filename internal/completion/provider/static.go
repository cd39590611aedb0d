package provider

import (
	"context"
	"strings"

	"github.com/dshills/typeahead/internal/completion"
)

// Static serves a fixed candidate list filtered by the base prefix.
// Useful for keyword lists and tests.
type Static struct {
	items []completion.Item
}

// NewStatic creates a provider over the given items. The slice is not
// copied; the caller must not mutate it afterwards.
func NewStatic(items []completion.Item) *Static {
	return &Static{items: items}
}

// Complete returns the items whose label starts with the base.
func (s *Static) Complete(_ context.Context, req completion.Request) ([]completion.Item, error) {
	var out []completion.Item
	for _, item := range s.items {
		if strings.HasPrefix(item.Label, req.Meet.Base) {
			out = append(out, item)
		}
	}
	return out, nil
}
