// Package config loads completion settings from TOML and supports live
// reload. Only the switches the trigger policy consumes live here;
// providers and surfaces carry their own options.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration.
type Config struct {
	Completion CompletionConfig `toml:"completion"`
}

// CompletionConfig controls completion triggering.
type CompletionConfig struct {
	// Enabled turns the completion engine on or off.
	Enabled bool `toml:"enabled"`

	// InComments allows triggering inside comments.
	InComments bool `toml:"in-comments"`

	// InStrings allows triggering inside string literals.
	InStrings bool `toml:"in-strings"`

	// InCode allows triggering outside comments and strings.
	InCode bool `toml:"in-code"`

	// MaxItems caps the number of candidates kept per session.
	MaxItems int `toml:"max-items"`

	// Provider selects the candidate source ("word", "lua", "static").
	Provider string `toml:"provider"`

	// LuaScript is the path to the provider script when Provider is "lua".
	LuaScript string `toml:"lua-script"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Completion: CompletionConfig{
			Enabled:  true,
			InCode:   true,
			MaxItems: 100,
			Provider: "word",
		},
	}
}

// Load reads configuration from path, merged over defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data merged over defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Completion.MaxItems < 0 {
		cfg.Completion.MaxItems = 0
	}
	return cfg, nil
}
