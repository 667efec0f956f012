// Package config loads process configuration from MADBOAT_* environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/madboat/madboat/internal/llm"
)

// Config is the process-wide configuration.
type Config struct {
	// DBPath overrides the XDG default. The --db flag overrides both.
	DBPath string `env:"MADBOAT_DB"`

	LogDir   string `env:"MADBOAT_LOG_DIR"`
	LogLevel string `env:"MADBOAT_LOG_LEVEL" envDefault:"info"`

	HTTPAddr string `env:"MADBOAT_HTTP_ADDR" envDefault:":8080"`

	// Free-text answers below this confidence get an LLM second opinion.
	RefineThreshold float64 `env:"MADBOAT_REFINE_THRESHOLD" envDefault:"40"`
	RefineEnabled   bool    `env:"MADBOAT_REFINE" envDefault:"true"`

	// BatchWorkers bounds parallelism of `madboat batch`.
	BatchWorkers int `env:"MADBOAT_BATCH_WORKERS" envDefault:"4"`

	LLM llm.Config
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and fills in an LLM provider from
// vendor key variables when none was selected.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.RefineThreshold < 0 || cfg.RefineThreshold > 100 {
		return Config{}, fmt.Errorf("MADBOAT_REFINE_THRESHOLD must be within 0..100, got %g", cfg.RefineThreshold)
	}
	if cfg.BatchWorkers < 1 {
		cfg.BatchWorkers = 1
	}
	cfg.LLM.Discover()
	return cfg, nil
}
