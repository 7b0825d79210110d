// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// api.go — public entry points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildDescriptor(bopts, cons...). Creates an empty
//     descriptor, resolves cfg, runs cons in order.
//   - Topology constructors append disjoint components; later components
//     see their vertex and face indices offset by what is already present.
//   - Tag constructors (Crease, Corner, Hole, FVar*, RandomCreases) refer
//     to the descriptor built so far and must follow the topology.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical descriptors.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

// Constructor applies a deterministic mutation to a descriptor using the
// resolved builderConfig. Constructors MUST validate parameters before
// touching d and return sentinel errors (no panics).
type Constructor func(d *refiner.TopologyDescriptor, cfg builderConfig) error

// BuildDescriptor resolves the builder configuration from bopts and applies
// all constructors in order to an empty descriptor.
//
// Errors:
//   - Constructor errors are wrapped with "BuildDescriptor: %w"; callers
//     branch with errors.Is against the builder sentinels.
//   - ErrConstructFailed: nil constructor, no faces at all, or a
//     face-varying channel that no longer mirrors the faces.
func BuildDescriptor(bopts []BuilderOption, cons ...Constructor) (*refiner.TopologyDescriptor, error) {
	cfg := newBuilderConfig(bopts...)
	d := &refiner.TopologyDescriptor{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDescriptor: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildDescriptor: %w", err)
		}
	}

	if len(d.FaceVertices) == 0 {
		return nil, fmt.Errorf("BuildDescriptor: no faces: %w", ErrConstructFailed)
	}
	for c, ch := range d.FVarChannels {
		if len(ch.FaceValues) != len(d.FaceVertices) {
			return nil, fmt.Errorf("BuildDescriptor: channel %d covers %d of %d faces: %w",
				c, len(ch.FaceValues), len(d.FaceVertices), ErrConstructFailed)
		}
	}
	return d, nil
}

// BuildRefiner builds a descriptor and hands it to refiner.NewFromDescriptor
// for scheme t. ropts customize the refiner (logger, error reporter).
func BuildRefiner(t scheme.Type, opts scheme.Options, bopts []BuilderOption, ropts []refiner.Option, cons ...Constructor) (*refiner.TopologyRefiner, error) {
	d, err := BuildDescriptor(bopts, cons...)
	if err != nil {
		return nil, err
	}
	r, err := refiner.NewFromDescriptor(d, t, opts, ropts...)
	if err != nil {
		return nil, fmt.Errorf("BuildRefiner: %w", err)
	}
	return r, nil
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// Topology:
//   PlatonicSolid(name)   closed oriented polyhedron (impl_platonic.go)
//   Grid(rows, cols)      open quad grid             (impl_grid.go)
//   Torus(rows, cols)     closed quad torus          (impl_grid.go)
//   Fan(valence)          quads around one vertex    (impl_wheel.go)
//   Wheel(n)              triangles around one vertex (impl_wheel.go)
//   Polygon(n)            a single n-sided face      (impl_cycle.go)
//
// Tags:
//   Crease, Corner, Hole                              (impl_tags.go)
//   FVarSeams, FVarContinuous                         (impl_fvar.go)
//   RandomCreases(p)                                  (impl_random_sparse.go)
