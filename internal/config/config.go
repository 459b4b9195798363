// Package config loads revstore configuration from a TOML file
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all revstore settings
type Config struct {
	Storage       StorageConfig       `toml:"storage"`
	Diff          DiffConfig          `toml:"diff"`
	Log           LogConfig           `toml:"log"`
	Observability ObservabilityConfig `toml:"observability"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend    string `toml:"backend"`     // "file" or "badger"
	Dir        string `toml:"dir"`         // directory for flat-file histories
	BadgerPath string `toml:"badger_path"` // directory for the badger backend
}

// DiffConfig bounds the comparison engine
type DiffConfig struct {
	MaxInputChars int `toml:"max_input_chars"` // cap per side, in runes
}

// LogConfig configures structured logging
type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// ObservabilityConfig configures the metrics/profiling HTTP server
type ObservabilityConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:    "file",
			Dir:        "cache/versions",
			BadgerPath: "cache/badger",
		},
		Diff: DiffConfig{
			MaxInputChars: 200000,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Observability: ObservabilityConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// Load reads configuration from the given TOML file, applied over the
// defaults. A missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "badger":
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Diff.MaxInputChars < 0 {
		return errors.New("config: max_input_chars must not be negative")
	}
	return nil
}
