package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
quit_times = 1
message_timeout = "2s"
log_file = "/tmp/hecto.log"
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.QuitTimes)
	assert.Equal(t, 2*time.Second, cfg.MessageTimeout.Duration)
	assert.Equal(t, "/tmp/hecto.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.ShowWelcome, "unset keys keep their defaults")
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `quit_times = `},
		{"unknown key", `tab_stop = 8`},
		{"bad duration", `message_timeout = "soon"`},
		{"negative quit times", `quit_times = -1`},
		{"zero timeout", `message_timeout = "0s"`},
		{"bad level", `log_level = "verbose"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestDefaultPathHonoursEnvironment(t *testing.T) {
	t.Setenv(EnvPath, "/etc/hecto.toml")
	assert.Equal(t, "/etc/hecto.toml", DefaultPath())
}
