package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RawConfig mirrors the config file. Scalar fields are pointers so that an
// absent key falls back to the builtin default while an explicit empty
// value overrides it.
type RawConfig struct {
	Title        *string   `yaml:"title"`
	SummonHotkey *string   `yaml:"summon_hotkey"`
	Bindings     []Binding `yaml:"bindings"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "appswitch", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// is not an error; builtin defaults are used.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path, applies builtin defaults
// for absent keys, and validates the result.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	var raw RawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse: %w", path, err)
	}

	if raw.Title != nil {
		cfg.Title = *raw.Title
	}
	if raw.SummonHotkey != nil {
		cfg.SummonHotkey = *raw.SummonHotkey
	}
	if raw.Bindings != nil {
		cfg.Bindings = raw.Bindings
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
