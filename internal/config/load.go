package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subdiv/builder"
	"github.com/katalvlaran/subdiv/refiner"
)

// Load loads configuration with priority: defaults < file. The result is
// validated; relative mesh paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if cfg.Mesh.Path != "" && !filepath.IsAbs(cfg.Mesh.Path) {
		cfg.Mesh.Path = filepath.Join(filepath.Dir(path), cfg.Mesh.Path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A mesh source in the file replaces the default one.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var probe struct {
		Mesh *MeshConfig `yaml:"mesh"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Mesh != nil {
		cfg.Mesh = MeshConfig{}
	}
	return yaml.Unmarshal(data, cfg)
}

// LoadDescriptor reads a TopologyDescriptor from a YAML file.
func LoadDescriptor(path string) (*refiner.TopologyDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading descriptor from %s: %w", path, err)
	}
	d := &refiner.TopologyDescriptor{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("decoding descriptor %s: %w", path, err)
	}
	return d, nil
}

// Descriptor resolves the mesh section into a descriptor.
func (c *Config) Descriptor() (*refiner.TopologyDescriptor, error) {
	switch {
	case c.Mesh.Descriptor != nil:
		return c.Mesh.Descriptor, nil
	case c.Mesh.Path != "":
		return LoadDescriptor(c.Mesh.Path)
	case c.Mesh.Solid != "":
		name, ok := builder.ParsePlatonicName(c.Mesh.Solid)
		if !ok {
			return nil, fmt.Errorf("mesh: unknown solid %q: %w", c.Mesh.Solid, ErrInvalidConfig)
		}
		return builder.BuildDescriptor(nil, builder.PlatonicSolid(name))
	default:
		return nil, fmt.Errorf("mesh: no source: %w", ErrInvalidConfig)
	}
}
