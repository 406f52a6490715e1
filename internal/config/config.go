package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Calculator holds configuration for the expcalc tool.
type Calculator struct {
	LogLevel string `yaml:"log_level" env:"EXPGROWTH_LOG_LEVEL"`

	// Batch evaluation
	Workers int  `yaml:"workers" env:"EXPGROWTH_WORKERS"`
	Strict  bool `yaml:"strict" env:"EXPGROWTH_STRICT"` // abort the batch on the first bad record

	// Report
	Locale string `yaml:"locale" env:"EXPGROWTH_LOCALE"` // BCP 47 tag for number formatting
}

// DefaultCalculator returns Calculator config with sensible defaults.
func DefaultCalculator() Calculator {
	return Calculator{
		LogLevel: "info",
		Workers:  4,
		Strict:   false,
		Locale:   "en",
	}
}

// LoadCalculator loads config from a YAML file, then applies EXPGROWTH_*
// environment overrides. If the file doesn't exist, defaults are used.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Calculator) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values give LevelInfo.
func (c Calculator) SlogLevel() slog.Level {
	if lvl, ok := logLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}
