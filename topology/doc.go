// SPDX-License-Identifier: MIT

// Package topology holds the multi-level mesh topology used by the refiner:
// one Level per refinement depth and one Refinement per transition between
// consecutive levels.
//
// A Level is an index-based snapshot of a polygon mesh:
//
//   - face→vertex and face→edge incidence (one slice per face),
//   - edge→vertex and edge→face incidence,
//   - vertex→face and vertex→edge incidence, ordered around manifold vertices,
//   - per-component tags (VertexTag, EdgeTag, FaceTag) and sharpness,
//   - zero or more face-varying channels (FVarChannel).
//
// Level 0 is built from face-vertex lists by NewBaseLevel, optionally
// sharpened and holed through its Set* methods, and tagged by Finalize.
// Every deeper level is produced by a Refinement: NewQuadRefinement or
// NewTriRefinement bind a parent and an empty child, and Refine splits either
// every parent face (dense) or the faces chosen through a SparseSelector
// (sparse). Child tags are inherited from parent components, so a child level
// is fully tagged the moment Refine returns.
//
// Tags are designed to be combined: CombineVertexTags ORs the tags of a face's
// corners into one composite that summarizes the neighborhood of the face.
//
// A Level is not safe for concurrent mutation; once a Refinement has used it
// as a parent it is treated as immutable and may be read from any goroutine.
package topology
