package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Tabs.SwitchToNewWhenOpened)
	assert.Equal(t, 25, cfg.Tabs.RecentlyClosedLimit)
	assert.Equal(t, 2, cfg.Demo.Windows)

	// First load writes the file and its schema next to it.
	configFile, err := GetConfigFile()
	require.NoError(t, err)
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(filepath.Dir(configFile), "config.schema.json"))
}

func TestLoadReadsConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
[logging]
level = "debug"

[tabs]
switch_to_new_when_opened = false
recently_closed_limit = 10

[demo]
windows = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Tabs.SwitchToNewWhenOpened)
	assert.Equal(t, 10, cfg.Tabs.RecentlyClosedLimit)
	assert.Equal(t, 3, cfg.Demo.Windows)
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
[logging]
level = "verbose"
format = "xml"

[tabs]
recently_closed_limit = -5

[demo]
windows = 99
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 25, cfg.Tabs.RecentlyClosedLimit)
	assert.Equal(t, 4, cfg.Demo.Windows)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TABWELL_LOG_LEVEL", "error")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, "error", m.Get().Logging.Level)
}

func TestGetReturnsCopy(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	first := m.Get()
	first.Tabs.RecentlyClosedLimit = 999
	assert.Equal(t, 25, m.Get().Tabs.RecentlyClosedLimit)
}
