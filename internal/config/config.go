// Package config loads the persisted generator settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/example/modgen/internal/core/module"
	"github.com/example/modgen/internal/core/settings"
)

// Config represents the settings that apply to every generation.
type Config struct {
	DefaultType  string // "api" or "web"
	SettingsPath string
	Published    bool // settings document exists on disk
}

// Load reads the settings document at path once per invocation.
// A missing document or a document without default_type yields "api".
// Any other value is kept verbatim and rejected when a generation uses it.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DefaultType:  string(module.TypeAPI),
		SettingsPath: path,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg.Published = true

	value, ok := settings.DefaultType(string(data))
	if !ok {
		return cfg, nil
	}
	cfg.DefaultType = value

	return cfg, nil
}
