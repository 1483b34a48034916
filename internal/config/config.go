// Package config loads the launcher's settings from defaults, an optional
// YAML file and the environment.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"remote-launcher/internal/logger"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL = "http://localhost:2354"
	DefaultRoute     = "/"
	SettingsRoute    = "/settings"

	EnvServerURL = "LAUNCHER_SERVER_URL"
	EnvLogLevel  = "LOG_LEVEL"
	EnvDebug     = "DEBUG"

	appDirName = "remote-launcher"
)

type Config struct {
	ServerURL  string       `yaml:"server_url"`
	StartRoute string       `yaml:"start_route"`
	Log        LogConfig    `yaml:"log"`
	Window     WindowConfig `yaml:"window"`
}

type LogConfig struct {
	Level  string        `yaml:"level"`
	Format logger.Format `yaml:"format"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func Default() Config {
	return Config{
		ServerURL:  DefaultServerURL,
		StartRoute: DefaultRoute,
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatConsole,
		},
		Window: WindowConfig{
			Width:  640,
			Height: 480,
		},
	}
}

// DefaultPath is where Load looks when no explicit file is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDirName, "config.yaml")
}

// Load returns defaults overlaid with the YAML file at path and then the
// environment. A missing file is an error only when explicit is true.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parse config %s", path)
			}
		case os.IsNotExist(err) && !explicit:
		default:
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvServerURL); ok && v != "" {
		c.ServerURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	} else if v, ok := lookup(EnvDebug); ok && v == "1" {
		c.Log.Level = "debug"
	}
}

func (c Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return errors.Wrap(err, "server_url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("server_url %q: scheme must be http or https", c.ServerURL)
	}
	if u.Host == "" {
		return errors.Errorf("server_url %q: missing host", c.ServerURL)
	}
	if c.StartRoute != DefaultRoute && c.StartRoute != SettingsRoute {
		return errors.Errorf("start_route %q: unknown route", c.StartRoute)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch c.Log.Format {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return errors.Errorf("log.format %q: must be console or json", c.Log.Format)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

// BaseURL is the server origin without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.ServerURL, "/")
}
