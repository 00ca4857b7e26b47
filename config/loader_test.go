package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoaderDefaultsOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewLoader(nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoaderLayers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
game:
  seed: 11
log:
  level: debug
`)
	explicit := filepath.Join(t.TempDir(), "play.yaml")
	writeFile(t, explicit, `
game:
  seed: 99
`)

	cfg, err := NewLoader(nil).Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoaderBrokenUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "log: [")

	cfg, err := NewLoader(nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoaderExplicitErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "log:\n  level: loud\n")
	_, err = NewLoader(nil).Load(invalid)
	assert.ErrorContains(t, err, "log.level")
}
