package provider

import (
	"context"
	"testing"

	"github.com/dshills/typeahead/internal/completion"
)

func request(text, base string) completion.Request {
	return completion.Request{
		Text: text,
		Meet: completion.Meet{Base: base},
	}
}

func labels(items []completion.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestWordComplete(t *testing.T) {
	tests := []struct {
		name string
		text string
		base string
		want []string
	}{
		{
			name: "matches sorted and deduplicated",
			text: "print(x)\nprintln(y)\nprint(z)\nparse()",
			base: "pr",
			want: []string{"print", "println"},
		},
		{
			name: "base itself excluded",
			text: "pr pr pr",
			base: "pr",
			want: nil,
		},
		{
			name: "no matches",
			text: "alpha beta gamma",
			base: "z",
			want: nil,
		},
		{
			name: "underscores and digits are word bytes",
			text: "my_var2 = my_var2_old",
			base: "my",
			want: []string{"my_var2", "my_var2_old"},
		},
		{
			name: "prefix match is case sensitive",
			text: "Print print",
			base: "pr",
			want: []string{"print"},
		},
	}

	w := NewWord()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := w.Complete(context.Background(), request(tt.text, tt.base))
			if err != nil {
				t.Fatalf("Complete() error: %v", err)
			}
			got := labels(items)
			if len(got) != len(tt.want) {
				t.Fatalf("labels = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("labels = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestStaticComplete(t *testing.T) {
	s := NewStatic([]completion.Item{
		{Label: "func", Kind: "keyword"},
		{Label: "for", Kind: "keyword"},
		{Label: "return", Kind: "keyword"},
	})

	items, err := s.Complete(context.Background(), request("", "f"))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	got := labels(items)
	if len(got) != 2 || got[0] != "func" || got[1] != "for" {
		t.Errorf("labels = %v, want [func for]", got)
	}

	items, err = s.Complete(context.Background(), request("", "x"))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("non-matching base returned %v", labels(items))
	}
}
