// SPDX-License-Identifier: MIT
// Package config handles run configuration of the subdtopo tool: which mesh
// to load, which scheme to apply, how to refine it and where to log.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subdiv/internal/logger"
	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

// Refinement modes.
const (
	ModeUniform  = "uniform"
	ModeAdaptive = "adaptive"
)

// ErrInvalidConfig indicates a configuration that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all run settings.
type Config struct {
	Scheme  SchemeConfig  `yaml:"scheme"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Refine  RefineConfig  `yaml:"refine"`
	Logging LoggingConfig `yaml:"logging"`
}

// SchemeConfig names the subdivision scheme and its options.
type SchemeConfig struct {
	Type                     string `yaml:"type"`
	VtxBoundaryInterpolation string `yaml:"vtx_boundary_interpolation"`
	FVarLinearInterpolation  string `yaml:"fvar_linear_interpolation"`
	CreasingMethod           string `yaml:"creasing_method"`
}

// MeshConfig selects the base mesh. Exactly one of Solid, Path and
// Descriptor must be set.
type MeshConfig struct {
	Solid      string                      `yaml:"solid,omitempty"`
	Path       string                      `yaml:"path,omitempty"`
	Descriptor *refiner.TopologyDescriptor `yaml:"descriptor,omitempty"`
}

// RefineConfig holds refinement settings for either mode.
type RefineConfig struct {
	Mode                        string `yaml:"mode"`
	Level                       int    `yaml:"level"`
	SecondaryLevel              int    `yaml:"secondary_level"`
	UseSingleCreasePatch        bool   `yaml:"use_single_crease_patch"`
	UseInfSharpPatch            bool   `yaml:"use_inf_sharp_patch"`
	ConsiderFVarChannels        bool   `yaml:"consider_fvar_channels"`
	OrderVerticesFromFacesFirst bool   `yaml:"order_vertices_from_faces_first"`
	FullTopologyInLastLevel     bool   `yaml:"full_topology_in_last_level"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := scheme.DefaultOptions()
	return &Config{
		Scheme: SchemeConfig{
			Type:                     scheme.Catmark.String(),
			VtxBoundaryInterpolation: opts.VtxBoundaryInterpolation.String(),
			FVarLinearInterpolation:  opts.FVarLinearInterpolation.String(),
			CreasingMethod:           opts.CreasingMethod.String(),
		},
		Mesh: MeshConfig{
			Solid: "cube",
		},
		Refine: RefineConfig{
			Mode:           ModeUniform,
			Level:          2,
			SecondaryLevel: refiner.MaxRefinementLevel,
		},
		Logging: LoggingConfig{
			Level: logger.LevelInfo,
		},
	}
}

// Validate checks that every name parses and every level is in range.
func (c *Config) Validate() error {
	if _, _, err := c.SchemeOptions(); err != nil {
		return err
	}

	sources := 0
	for _, set := range []bool{c.Mesh.Solid != "", c.Mesh.Path != "", c.Mesh.Descriptor != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("mesh: need exactly one of solid, path, descriptor, got %d: %w", sources, ErrInvalidConfig)
	}

	switch c.Refine.Mode {
	case ModeUniform, ModeAdaptive:
	default:
		return fmt.Errorf("refine: unknown mode %q: %w", c.Refine.Mode, ErrInvalidConfig)
	}
	if c.Refine.Level < 0 || c.Refine.Level > refiner.MaxRefinementLevel {
		return fmt.Errorf("refine: level %d not in [0,%d]: %w", c.Refine.Level, refiner.MaxRefinementLevel, ErrInvalidConfig)
	}
	if c.Refine.SecondaryLevel < 0 || c.Refine.SecondaryLevel > refiner.MaxRefinementLevel {
		return fmt.Errorf("refine: secondary level %d not in [0,%d]: %w",
			c.Refine.SecondaryLevel, refiner.MaxRefinementLevel, ErrInvalidConfig)
	}

	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging: unknown level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	return nil
}

// SchemeOptions parses the scheme section.
func (c *Config) SchemeOptions() (scheme.Type, scheme.Options, error) {
	t, ok := scheme.ParseType(c.Scheme.Type)
	if !ok {
		return 0, scheme.Options{}, fmt.Errorf("scheme: unknown type %q: %w", c.Scheme.Type, ErrInvalidConfig)
	}

	opts := scheme.DefaultOptions()
	if name := c.Scheme.VtxBoundaryInterpolation; name != "" {
		if opts.VtxBoundaryInterpolation, ok = scheme.ParseBoundaryInterpolation(name); !ok {
			return 0, scheme.Options{}, fmt.Errorf("scheme: unknown boundary interpolation %q: %w", name, ErrInvalidConfig)
		}
	}
	if name := c.Scheme.FVarLinearInterpolation; name != "" {
		if opts.FVarLinearInterpolation, ok = scheme.ParseFVarLinearInterpolation(name); !ok {
			return 0, scheme.Options{}, fmt.Errorf("scheme: unknown fvar interpolation %q: %w", name, ErrInvalidConfig)
		}
	}
	if name := c.Scheme.CreasingMethod; name != "" {
		if opts.CreasingMethod, ok = scheme.ParseCreasingMethod(name); !ok {
			return 0, scheme.Options{}, fmt.Errorf("scheme: unknown creasing method %q: %w", name, ErrInvalidConfig)
		}
	}
	return t, opts, nil
}

// UniformOptions converts the refine section for RefineUniform.
func (c *Config) UniformOptions() refiner.UniformOptions {
	return refiner.UniformOptions{
		RefinementLevel:             c.Refine.Level,
		OrderVerticesFromFacesFirst: c.Refine.OrderVerticesFromFacesFirst,
		FullTopologyInLastLevel:     c.Refine.FullTopologyInLastLevel,
	}
}

// AdaptiveOptions converts the refine section for RefineAdaptive.
func (c *Config) AdaptiveOptions() refiner.AdaptiveOptions {
	return refiner.AdaptiveOptions{
		IsolationLevel:              c.Refine.Level,
		SecondaryLevel:              c.Refine.SecondaryLevel,
		UseSingleCreasePatch:        c.Refine.UseSingleCreasePatch,
		UseInfSharpPatch:            c.Refine.UseInfSharpPatch,
		ConsiderFVarChannels:        c.Refine.ConsiderFVarChannels,
		OrderVerticesFromFacesFirst: c.Refine.OrderVerticesFromFacesFirst,
	}
}
