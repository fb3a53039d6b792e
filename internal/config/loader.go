package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadFromEnv overlays SCYTALE_* environment variables onto cfg. Unset
// variables leave fields at their envDefault. Call it before flag parsing
// so that flags take precedence.
func LoadFromEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a Config built from defaults and the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
