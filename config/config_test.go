package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"browsers": ["chrome", "firefox"],
		"test_files": ["tests/test_login.py"],
		"headless": true,
		"timeout": 60
	}`), 0644))

	cfg, err := LoadRun(path)
	require.NoError(t, err)
	require.Equal(t, []string{"chrome", "firefox"}, cfg.Browsers)
	require.Equal(t, []string{"tests/test_login.py"}, cfg.TestFiles)
	require.True(t, cfg.Headless)
	require.Equal(t, 60, cfg.Timeout)
}

func TestLoadRunMissingFile(t *testing.T) {
	_, err := LoadRun(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadBrowsersMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadBrowsers(zerolog.Nop(), filepath.Join(t.TempDir(), "browsers.yaml"))
	require.NoError(t, err)
	require.True(t, cfg.Settings("chrome").Enabled)
	require.False(t, cfg.Settings("safari").Enabled)
	require.Equal(t, 10, cfg.TestSettings.ImplicitWait)
}

func TestLoadBrowsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browsers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
browsers:
  chrome:
    enabled: true
    headless: true
    options: ["--no-sandbox"]
  firefox:
    enabled: false
test_settings:
  implicit_wait: 5
`), 0644))

	cfg, err := LoadBrowsers(zerolog.Nop(), path)
	require.NoError(t, err)
	require.True(t, cfg.Settings("chrome").Headless)
	require.Equal(t, []string{"--no-sandbox"}, cfg.Settings("chrome").Options)
	require.False(t, cfg.Settings("firefox").Enabled)
	require.Equal(t, 5, cfg.TestSettings.ImplicitWait)

	// absent browsers resolve to a disabled entry
	require.False(t, cfg.Settings("edge").Enabled)
}

func TestSetHeadless(t *testing.T) {
	cfg := DefaultBrowsers()
	cfg.SetHeadless(true)
	for name := range cfg.Browsers {
		require.True(t, cfg.Settings(name).Headless, name)
	}
}
