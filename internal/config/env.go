package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target.
// Fields whose variable is unset keep their current value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Paths holds file locations resolved from the environment.
type Paths struct {
	Config string `env:"DPSCALC_CONFIG" envDefault:"config/dpscalc.yaml"`
}

// LoadPaths resolves Paths from the environment.
func LoadPaths() (Paths, error) {
	var p Paths
	if err := ParseEnv(&p); err != nil {
		return p, err
	}
	return p, nil
}
