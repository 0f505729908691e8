package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom fills cfg from vars, or from the process environment when
// vars is nil. Variable names follow the env and envPrefix tags of
// [StructuredConfig], e.g. SERVER_RATE_LIMIT.
func parseEnvFrom(cfg *StructuredConfig, vars map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}
