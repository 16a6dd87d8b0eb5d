package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by applyEnv
const EnvPrefix = "MERLIN_"

// applyEnv overrides cfg with any MERLIN_* environment variables that are set.
// Fields whose variable is absent keep the value loaded from the file.
func applyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return nil
}
