package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
addr: "127.0.0.1:9000"
timeline_points: 30
theme:
  default: dark
  directory: ./themes
locale:
  directory: ./locales
log:
  format: JSON
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 30, cfg.TimelinePoints)
	assert.Equal(t, "dark", cfg.Theme.Default)
	assert.Equal(t, "./themes", cfg.Theme.Directory)
	assert.Equal(t, "./locales", cfg.Locale.Directory)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1000, cfg.HistoryLimit)
	assert.Equal(t, 60, cfg.PushIntervalSeconds)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "addr: [",
		"log format":     "log:\n  format: xml\n",
		"too many ticks": "timeline_points: 5000\n",
	}
	for name, content := range tests {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestNormalizeZeroValues(t *testing.T) {
	cfg := Config{HistoryLimit: -4}
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, DefaultConfig(), cfg)
}
