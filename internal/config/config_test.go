package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCalculator_MissingFile(t *testing.T) {
	cfg, err := LoadCalculator(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCalculator(), cfg)
}

func TestLoadCalculator_YAML(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
workers: 8
strict: true
locale: de
`)

	cfg, err := LoadCalculator(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadCalculator_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "workers: 2\n")

	cfg, err := LoadCalculator(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadCalculator_EnvOverride(t *testing.T) {
	path := writeConfig(t, "workers: 2\nlog_level: warn\n")
	t.Setenv("EXPGROWTH_WORKERS", "16")
	t.Setenv("EXPGROWTH_STRICT", "true")

	cfg, err := LoadCalculator(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "warn", cfg.LogLevel, "unset env keeps YAML value")
}

func TestLoadCalculator_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad yaml", body: "workers: [1, 2"},
		{name: "zero workers", body: "workers: 0\n"},
		{name: "unknown log level", body: "log_level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCalculator(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestCalculator_Validate(t *testing.T) {
	cfg := DefaultCalculator()
	require.NoError(t, cfg.Validate())

	cfg.Workers = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestCalculator_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, Calculator{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Calculator{LogLevel: "???"}.SlogLevel())
}
