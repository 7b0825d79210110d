package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subdiv/refiner"
)

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	return writeYAML(path, c)
}

// SaveDescriptor writes d to path in the format LoadDescriptor reads.
func SaveDescriptor(path string, d *refiner.TopologyDescriptor) error {
	return writeYAML(path, d)
}

func writeYAML(path string, v any) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
