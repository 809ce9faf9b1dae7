// Package config loads uuidv7 tool settings from UUIDV7_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/lqviet/uuidv7"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds tool and generator settings.
type Config struct {
	// Logging
	LogLevel  string `env:"UUIDV7_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"UUIDV7_LOG_FORMAT" envDefault:"console"`

	// Output is the default rendering of command results: text, json or yaml.
	Output string `env:"UUIDV7_OUTPUT" envDefault:"text"`

	// Backoff between clock reads after the sequence of a millisecond is used up.
	Backoff time.Duration `env:"UUIDV7_EXHAUSTION_BACKOFF" envDefault:"1ms"`

	// WaitTimeout bounds a single generation call; zero means no limit.
	WaitTimeout time.Duration `env:"UUIDV7_WAIT_TIMEOUT" envDefault:"0s"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Output:    OutputText,
		Backoff:   uuidv7.DefaultBackoff,
	}
}

// Load parses environment variables into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and durations.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: invalid output %q (want text, json or yaml)", c.Output)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid log format %q (want console or json)", c.LogFormat)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Backoff <= 0 {
		return fmt.Errorf("config: exhaustion backoff must be positive, got %s", c.Backoff)
	}
	if c.WaitTimeout < 0 {
		return fmt.Errorf("config: wait timeout must not be negative, got %s", c.WaitTimeout)
	}
	return nil
}

// GeneratorOptions translates the configuration into generator options.
func (c *Config) GeneratorOptions(logger *zap.Logger) []uuidv7.Option {
	return []uuidv7.Option{
		uuidv7.WithBackoff(c.Backoff),
		uuidv7.WithLogger(logger),
	}
}
