package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"launchgate/pkg/platform/sentinel"
)

// Config captures process-level settings read from the environment. CLI flags
// override these values.
type Config struct {
	PolicyFile string `env:"LAUNCHGATE_POLICY_FILE"`
	LogLevel   string `env:"LAUNCHGATE_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LAUNCHGATE_LOG_FORMAT" envDefault:"text"`
	MetricsOut string `env:"LAUNCHGATE_METRICS_OUT"`
	Trace      bool   `env:"LAUNCHGATE_TRACE"`
}

// ValidLogFormats lists the accepted LogFormat values.
var ValidLogFormats = []string{"text", "json"}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes and checks the log settings.
func (c *Config) Validate() error {
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q must be one of %v: %w", c.LogFormat, ValidLogFormats, sentinel.ErrInvalidInput)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q must be one of debug, info, warn, error: %w", c.LogLevel, sentinel.ErrInvalidInput)
	}
	return nil
}
