// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Canonical model:
//   • Build one of the five Platonic solids as a closed polygon mesh with the
//     canonical face lists of variants_platonic.go.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrUnknownSolid.
//   • Appends V vertices and F faces (offset) in the dataset's stable order.
//   • Every face is wound consistently, so every edge is shared by exactly
//     two faces in opposite directions.
//
// Complexity:
//   • Time: O(F·n) for the selected solid (constants: F ≤ 20, n ≤ 5).

package builder

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refiner"
)

// PlatonicSolid returns a Constructor that appends the chosen solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		solid, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrUnknownSolid)
		}
		return appendComponent(MethodPlatonicSolid, d, solid.numVertices, solid.faces)
	}
}
