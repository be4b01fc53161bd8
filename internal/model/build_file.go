package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBuildFile reads a single build from a YAML file.
func LoadBuildFile(path string) (Build, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Build{}, fmt.Errorf("reading build %s: %w", path, err)
	}

	var b Build
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return Build{}, fmt.Errorf("parsing build %s: %w", path, err)
	}
	if b.Name == "" {
		b.Name = path
	}
	return b, nil
}

// WriteBuildFile writes b as YAML to path.
func WriteBuildFile(path string, b Build) error {
	raw, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding build %q: %w", b.Name, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing build %s: %w", path, err)
	}
	return nil
}
