package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	c := cfg.Completion
	if !c.Enabled || !c.InCode || c.InComments || c.InStrings {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Provider != "word" {
		t.Errorf("Provider = %q, want word", c.Provider)
	}
	if c.MaxItems != 100 {
		t.Errorf("MaxItems = %d, want 100", c.MaxItems)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
[completion]
in-comments = true
in-code = false
max-items = 10
provider = "lua"
lua-script = "complete.lua"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := cfg.Completion
	if !c.InComments || c.InCode {
		t.Errorf("switches not applied: %+v", c)
	}
	if !c.Enabled {
		t.Error("Enabled should keep its default when unset")
	}
	if c.MaxItems != 10 || c.Provider != "lua" || c.LuaScript != "complete.lua" {
		t.Errorf("unexpected values: %+v", c)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	if _, err := Parse([]byte("[completion\nbroken")); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseNegativeMaxItemsClamped(t *testing.T) {
	cfg, err := Parse([]byte("[completion]\nmax-items = -5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Completion.MaxItems != 0 {
		t.Errorf("MaxItems = %d, want 0", cfg.Completion.MaxItems)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typeahead.toml")
	if err := os.WriteFile(path, []byte("[completion]\nin-strings = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Completion.InStrings {
		t.Error("in-strings not loaded")
	}
}
