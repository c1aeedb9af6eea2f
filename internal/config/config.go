// Package config reads navodds settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment defaults for the CLI. Command-line flags
// override any field set here.
type Config struct {
	LogLevel    string `env:"NAVODDS_LOG_LEVEL" envDefault:"info"`
	LogJSON     bool   `env:"NAVODDS_LOG_JSON" envDefault:"false"`
	MaxStates   int    `env:"NAVODDS_MAX_STATES" envDefault:"0"`
	Parallelism int    `env:"NAVODDS_PARALLELISM" envDefault:"0"`
	MetricsFile string `env:"NAVODDS_METRICS_FILE"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config populated from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxStates < 0 {
		return Config{}, fmt.Errorf("parse env: NAVODDS_MAX_STATES must be >= 0, got %d", cfg.MaxStates)
	}

	return cfg, nil
}
