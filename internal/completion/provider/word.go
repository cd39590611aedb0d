package provider

import (
	"context"
	"sort"
	"strings"

	"github.com/dshills/typeahead/internal/completion"
)

// Word harvests candidate words from the request's buffer snapshot:
// every identifier run that starts with the base, except the base
// itself, deduplicated and sorted.
type Word struct{}

// NewWord creates a buffer-word provider.
func NewWord() *Word {
	return &Word{}
}

// Complete scans the buffer snapshot for words matching the base.
func (w *Word) Complete(_ context.Context, req completion.Request) ([]completion.Item, error) {
	words := wordsWithPrefix(req.Text, req.Meet.Base)
	if len(words) == 0 {
		return nil, nil
	}

	items := make([]completion.Item, len(words))
	for i, word := range words {
		items[i] = completion.Item{Label: word, Kind: "word"}
	}
	return items, nil
}

// wordsWithPrefix collects the distinct words in text that start with
// prefix, excluding prefix itself. The prefix match is case-sensitive;
// visibility filtering downstream is looser.
func wordsWithPrefix(text, prefix string) []string {
	seen := make(map[string]bool)
	var words []string

	i := 0
	for i < len(text) {
		for i < len(text) && !isWordByte(text[i]) {
			i++
		}

		start := i
		for i < len(text) && isWordByte(text[i]) {
			i++
		}

		word := text[start:i]
		if word == "" || word == prefix || !strings.HasPrefix(word, prefix) {
			continue
		}
		if !seen[word] {
			seen[word] = true
			words = append(words, word)
		}
	}

	sort.Strings(words)
	return words
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}
