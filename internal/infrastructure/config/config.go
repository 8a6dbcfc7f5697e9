package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Output formats understood by the renderer
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds process configuration. Numeric behavior is not configurable.
type Config struct {
	Logging LogConfig
	Output  OutputConfig
	Metrics MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"CALC_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"CALC_LOG_DEV" default:"false"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `envconfig:"CALC_OUTPUT" default:"text"`
}

// MetricsConfig toggles the metrics dump after each command.
type MetricsConfig struct {
	Enabled bool `envconfig:"CALC_METRICS" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (want text, json or yaml)", c.Output.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}
