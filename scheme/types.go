// SPDX-License-Identifier: MIT
// Package: subdiv/scheme
//
// types.go — scheme enumeration and topological traits.

package scheme

// Type identifies a subdivision scheme.
type Type int

// Scheme values (stable ordering).
const (
	Bilinear Type = iota // face-local, quad split
	Catmark              // Catmull-Clark, quad split
	Loop                 // Loop, triangle split
)

// String provides a readable identifier for logs and errors.
func (t Type) String() string {
	switch t {
	case Bilinear:
		return "bilinear"
	case Catmark:
		return "catmark"
	case Loop:
		return "loop"
	default:
		return "unknown"
	}
}

// ParseType maps a scheme name back to its Type. The second result is false
// for unknown names.
func ParseType(name string) (Type, bool) {
	for _, t := range []Type{Bilinear, Catmark, Loop} {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Split is the way a scheme divides a face into child faces.
type Split int

const (
	// SplitToQuads splits an N-sided face into N quads around a new face-point.
	SplitToQuads Split = iota
	// SplitToTris splits a triangle into four triangles using edge-points only.
	SplitToTris
)

// traits holds the per-scheme constants.
type traits struct {
	split                Split
	regularFaceSize      int
	regularVertexValence int
	localNeighborhood    int
}

var schemeTraits = map[Type]traits{
	Bilinear: {split: SplitToQuads, regularFaceSize: 4, regularVertexValence: 4, localNeighborhood: 0},
	Catmark:  {split: SplitToQuads, regularFaceSize: 4, regularVertexValence: 4, localNeighborhood: 1},
	Loop:     {split: SplitToTris, regularFaceSize: 3, regularVertexValence: 6, localNeighborhood: 1},
}

// lookup falls back to Catmark traits for unknown values so callers never see
// zero sizes.
func lookup(t Type) traits {
	if tr, ok := schemeTraits[t]; ok {
		return tr
	}
	return schemeTraits[Catmark]
}

// TopologicalSplitType reports how faces of scheme t are split.
func TopologicalSplitType(t Type) Split { return lookup(t).split }

// RegularFaceSize reports the number of vertices of a regular face.
func RegularFaceSize(t Type) int { return lookup(t).regularFaceSize }

// RegularVertexValence reports the number of faces around a regular interior vertex.
func RegularVertexValence(t Type) int { return lookup(t).regularVertexValence }

// RegularBoundaryValence reports the number of faces around a regular
// boundary vertex (half the interior valence).
func RegularBoundaryValence(t Type) int { return lookup(t).regularVertexValence / 2 }

// LocalNeighborhoodSize reports how many rings of faces influence a limit
// point. Zero means the scheme is purely face-local.
func LocalNeighborhoodSize(t Type) int { return lookup(t).localNeighborhood }
