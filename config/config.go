// Package config loads the editor settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "HECTO_CONFIG"

// Duration is a time.Duration written as a string such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds the user settings.
type Config struct {
	// QuitTimes is how many extra Ctrl-Q presses quit a modified buffer.
	QuitTimes int `toml:"quit_times"`
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout Duration `toml:"message_timeout"`
	// LogFile enables logging to the given path. Empty disables logging.
	LogFile string `toml:"log_file"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// ShowWelcome draws the version banner on an empty, unnamed buffer.
	ShowWelcome bool `toml:"show_welcome"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		QuitTimes:      3,
		MessageTimeout: Duration{5 * time.Second},
		LogLevel:       "info",
		ShowWelcome:    true,
	}
}

// DefaultPath returns $HECTO_CONFIG, or hecto/config.toml under the user
// config directory. It returns "" when neither can be determined.
func DefaultPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hecto", "config.toml")
}

// Load reads the configuration at path on top of Default. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout.Duration <= 0 {
		return fmt.Errorf("message_timeout must be positive, got %s", c.MessageTimeout)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log_level %q (must be debug, info, warn, or error)", name)
}
