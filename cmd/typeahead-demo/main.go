// Package main is a minimal terminal surface for exercising the
// completion engine interactively: one buffer, normal and insert
// modes, and a candidate popup at the cursor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/typeahead/internal/completion"
	"github.com/dshills/typeahead/internal/completion/provider"
	"github.com/dshills/typeahead/internal/config"
	"github.com/dshills/typeahead/internal/editor"
	"github.com/dshills/typeahead/internal/event"
	"github.com/dshills/typeahead/internal/syntax"
	"github.com/dshills/typeahead/internal/textinput"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "typeahead-demo - completion engine playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: typeahead-demo [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	prov, err := newProvider(cfg.Completion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if closer, ok := prov.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	ed := editor.New()
	if path := flag.Arg(0); path != "" {
		text, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", path, err)
			return 1
		}
		ed.Open("file://"+path, string(text))
	} else {
		ed.Open("mem://scratch", "")
	}

	bus := event.NewBus()
	eng := completion.NewEngine(
		ed,
		syntax.NewClassifier(syntax.Go()),
		textinput.NewSink(ed),
		prov,
		completion.WithConfig(cfg.Completion),
		completion.WithBus(bus),
	)

	ui, err := newUI(ed, eng, bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer ui.Close()

	// Config edits take effect on the next trigger evaluation.
	reloads := make(chan config.Config, 1)
	if configPath != "" {
		stop, err := config.Watch(configPath, func(c config.Config) {
			select {
			case reloads <- c:
			default:
			}
		})
		if err == nil {
			defer stop()
		}
	}

	if err := ui.Run(reloads); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newProvider builds the candidate source named by the configuration.
func newProvider(cfg config.CompletionConfig) (completion.Provider, error) {
	switch cfg.Provider {
	case "", "word":
		return provider.NewWord(), nil
	case "lua":
		if cfg.LuaScript == "" {
			return nil, fmt.Errorf("provider %q requires lua-script", cfg.Provider)
		}
		return provider.NewLua(cfg.LuaScript)
	case "static":
		return provider.NewStatic(goKeywords()), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func goKeywords() []completion.Item {
	words := []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var",
	}
	items := make([]completion.Item, len(words))
	for i, w := range words {
		items[i] = completion.Item{Label: w, Kind: "keyword"}
	}
	return items
}
