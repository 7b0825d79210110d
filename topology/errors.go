// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// errors.go — sentinel errors for the topology package.

package topology

import "errors"

var (
	// ErrInvalidTopology indicates face-vertex data that cannot form a mesh
	// (no faces, faces with fewer than three corners, bad counts).
	ErrInvalidTopology = errors.New("topology: invalid topology")

	// ErrVertexOutOfRange indicates a vertex index outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("topology: vertex index out of range")

	// ErrDegenerateFace indicates a face with two consecutive identical corners.
	ErrDegenerateFace = errors.New("topology: degenerate face edge")

	// ErrNonTriangularFace indicates a non-triangle face under a triangle split.
	ErrNonTriangularFace = errors.New("topology: non-triangular face")

	// ErrInvalidFVarChannel indicates malformed face-varying data or an
	// unknown channel index.
	ErrInvalidFVarChannel = errors.New("topology: invalid face-varying channel")

	// ErrComponentOutOfRange indicates an edge, face or vertex index outside
	// the level's range.
	ErrComponentOutOfRange = errors.New("topology: component index out of range")

	// ErrLevelFinalized indicates a mutation of a level that is already tagged.
	ErrLevelFinalized = errors.New("topology: level already finalized")

	// ErrRefinementApplied indicates Refine was called twice.
	ErrRefinementApplied = errors.New("topology: refinement already applied")

	// ErrIncompleteParent indicates a parent level without full topology.
	ErrIncompleteParent = errors.New("topology: parent level lacks full topology")
)
