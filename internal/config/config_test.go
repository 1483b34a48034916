package config

import (
	"os"
	"path/filepath"
	"testing"

	"remote-launcher/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:2354", cfg.BaseURL())
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvLogLevel, "")
	path := writeFile(t, `
server_url: http://10.0.0.5:9000/
start_route: /settings
log:
  level: debug
  format: json
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://10.0.0.5:9000", cfg.BaseURL())
	assert.Equal(t, SettingsRoute, cfg.StartRoute)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Log.Format)
	assert.EqualValues(t, 640, cfg.Window.Width)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvServerURL, "")
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)

	_, err = Load(missing, true)
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "server_url: [")
	_, err := Load(path, true)
	assert.ErrorContains(t, err, "parse config")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "server_url: http://file:1\n")
	t.Setenv(EnvServerURL, "http://env:2")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDebug, "1")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"scheme", func(c *Config) { c.ServerURL = "ftp://host" }},
		{"host", func(c *Config) { c.ServerURL = "http://" }},
		{"route", func(c *Config) { c.StartRoute = "/about" }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
		{"window", func(c *Config) { c.Window.Width = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
