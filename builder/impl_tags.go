// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_tags.go — implementation of the Crease, Corner and Hole constructors.
//
// Tag constructors annotate the descriptor built so far; they add no
// topology and must follow the constructors that create the components they
// name.
//
// Contract:
//   • Indices refer to the descriptor at the time the constructor runs
//     (else ErrComponentOutOfRange).
//   • Crease requires v0 ≠ v1 sharing a face side; whether that pair is an
//     edge is settled by BuildBaseLevel, which owns the edge relation.
//   • sharpness ≤ 0 selects cfg.sharpness (WithDefaultSharpness,
//     WithUniformSharpness); sharpness > SharpnessInfinite or NaN fails with
//     ErrOptionViolation.
//   • Repeated tags on the same component are kept; the last one wins when
//     the base level is built.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refiner"
)

// Crease returns a Constructor that tags the edge (v0, v1) with sharpness.
func Crease(v0, v1 int, sharpness float32) Constructor {
	return func(d *refiner.TopologyDescriptor, cfg builderConfig) error {
		if err := validateSharpness(MethodCrease, sharpness); err != nil {
			return err
		}
		if err := validateVertex(MethodCrease, d, v0); err != nil {
			return err
		}
		if err := validateVertex(MethodCrease, d, v1); err != nil {
			return err
		}
		if v0 == v1 {
			return fmt.Errorf("%s: degenerate edge (%d,%d): %w", MethodCrease, v0, v1, ErrOptionViolation)
		}

		d.Creases = append(d.Creases, refiner.CreaseTag{V0: v0, V1: v1, Sharpness: cfg.sharpness(sharpness)})
		return nil
	}
}

// Corner returns a Constructor that tags vertex v with sharpness.
func Corner(v int, sharpness float32) Constructor {
	return func(d *refiner.TopologyDescriptor, cfg builderConfig) error {
		if err := validateSharpness(MethodCorner, sharpness); err != nil {
			return err
		}
		if err := validateVertex(MethodCorner, d, v); err != nil {
			return err
		}

		d.Corners = append(d.Corners, refiner.CornerTag{Vertex: v, Sharpness: cfg.sharpness(sharpness)})
		return nil
	}
}

// Hole returns a Constructor that marks the given faces as holes.
// All indices are validated before any is recorded.
func Hole(faces ...int) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		for _, f := range faces {
			if err := validateFace(MethodHole, d, f); err != nil {
				return err
			}
		}

		d.Holes = append(d.Holes, faces...)
		return nil
	}
}
