// ABOUTME: Tests for TOML configuration loading
// ABOUTME: Covers defaults, overrides, and validation failures

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, 200000, cfg.Diff.MaxInputChars)
	assert.False(t, cfg.Observability.Enabled)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revstore.toml")
	content := `
[storage]
backend = "badger"
badger_path = "/var/lib/revstore"

[diff]
max_input_chars = 5000

[log]
level = "debug"
pretty = false

[observability]
enabled = true
port = 9191
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/revstore", cfg.Storage.BadgerPath)
	assert.Equal(t, 5000, cfg.Diff.MaxInputChars)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.True(t, cfg.Observability.Enabled)
	assert.Equal(t, 9191, cfg.Observability.Port)

	// Settings not named in the file keep their defaults
	assert.Equal(t, "cache/versions", cfg.Storage.Dir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revstore.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\nbackend ="), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revstore.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nbackend = \"redis\"\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Diff.MaxInputChars = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Storage.Backend = ""
	assert.Error(t, cfg.Validate())
}
