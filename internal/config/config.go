package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/1broseidon/appswitch/internal/bindings"
)

// Binding is one key-to-application entry as it appears in the config file.
// Bindings are kept as an ordered list because display order follows file
// order.
type Binding struct {
	Key string `yaml:"key"`
	App string `yaml:"app"`
}

// Config is the effective appswitch configuration.
type Config struct {
	// Title is the console window title. The summon hotkey and external
	// launcher scripts locate the switcher window by this title.
	Title string `yaml:"title"`

	// SummonHotkey is an optional global X11 hotkey (e.g. "Mod4-space")
	// that raises the switcher's own terminal window. Empty disables it.
	SummonHotkey string `yaml:"summon_hotkey"`

	// Bindings maps letter keys to application-title fragments.
	Bindings []Binding `yaml:"bindings"`
}

// BindingList converts the configured bindings into registry input.
func (c *Config) BindingList() []bindings.Binding {
	out := make([]bindings.Binding, 0, len(c.Bindings))
	for _, b := range c.Bindings {
		out = append(out, bindings.Binding{Key: b.Key, App: b.App})
	}
	return out
}

// Validate checks the effective config for user errors. Blank keys or apps
// are not errors (they are filtered at registry load), but a key that is
// present must be a single letter and must not repeat.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}

	seen := make(map[string]int)
	for i, b := range c.Bindings {
		key := strings.TrimSpace(b.Key)
		if key == "" || strings.TrimSpace(b.App) == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || !unicode.IsLetter(r) {
			return fmt.Errorf("bindings[%d]: key %q must be a single letter", i, b.Key)
		}
		canonical := strings.ToUpper(key)
		if prev, dup := seen[canonical]; dup {
			return fmt.Errorf("bindings[%d]: key %q already bound at bindings[%d]", i, b.Key, prev)
		}
		seen[canonical] = i
	}

	return nil
}
