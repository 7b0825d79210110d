// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// variants_platonic.go — canonical data for the Platonic solids.
//
// Design:
//   • Single source of truth for the five closed Platonic meshes (vertex
//     counts and oriented face lists).
//   • Public-neutral type PlatonicName and internal datasets.
//   • Datasets are literal tables and never mutated; appendComponent copies
//     every face before offsetting it.
//
// Orientation:
//   • Every face is listed so that each edge appears exactly once in each
//     direction. Refinement of these meshes therefore never sees a
//     non-manifold edge.
//
// Extending:
//   • Add alternative embeddings as new enum values and tables only; the
//     existing face lists are part of the public contract.

package builder

import "strings"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4  (triangles)
	Cube                             // V=8,  E=12, F=6  (quads)
	Octahedron                       // V=6,  E=12, F=8  (triangles)
	Dodecahedron                     // V=20, E=30, F=12 (pentagons)
	Icosahedron                      // V=12, E=30, F=20 (triangles)
)

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName maps a case-insensitive solid name to its enum value.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, true
		}
	}
	return 0, false
}

// platonicSolid is one immutable dataset.
type platonicSolid struct {
	numVertices int
	faces       [][]int
}

var platonicSolids = map[PlatonicName]platonicSolid{
	Tetrahedron: {
		numVertices: 4,
		faces: [][]int{
			{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3},
		},
	},
	Cube: {
		numVertices: 8,
		faces: [][]int{
			{0, 3, 2, 1}, {4, 5, 6, 7},
			{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
		},
	},
	// Poles 0 and 1; equator ring 2, 4, 3, 5.
	Octahedron: {
		numVertices: 6,
		faces: [][]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	},
	// Top pentagon 0..4, bottom pentagon 5..9, zig-zag ring 10..19.
	Dodecahedron: {
		numVertices: 20,
		faces: [][]int{
			{0, 4, 3, 2, 1},
			{0, 1, 12, 11, 10}, {1, 2, 14, 13, 12}, {2, 3, 16, 15, 14},
			{3, 4, 18, 17, 16}, {4, 0, 10, 19, 18},
			{11, 12, 13, 6, 5}, {13, 14, 15, 7, 6}, {15, 16, 17, 8, 7},
			{17, 18, 19, 9, 8}, {19, 10, 11, 5, 9},
			{5, 6, 7, 8, 9},
		},
	},
	// Poles 0 and 11; upper ring 1..5, lower ring 6..10.
	Icosahedron: {
		numVertices: 12,
		faces: [][]int{
			{0, 1, 2}, {2, 1, 7}, {1, 6, 7}, {11, 7, 6},
			{0, 2, 3}, {3, 2, 8}, {2, 7, 8}, {11, 8, 7},
			{0, 3, 4}, {4, 3, 9}, {3, 8, 9}, {11, 9, 8},
			{0, 4, 5}, {5, 4, 10}, {4, 9, 10}, {11, 10, 9},
			{0, 5, 1}, {1, 5, 6}, {5, 10, 6}, {11, 6, 10},
		},
	},
}
