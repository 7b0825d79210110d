// SPDX-License-Identifier: MIT

// Package scheme describes the subdivision schemes understood by subdiv and
// the small set of rules the topology layers need from them.
//
// What:
//
//   - Type enumerates the schemes: Bilinear, Catmark (Catmull-Clark) and Loop.
//   - Traits answer the purely topological questions a refiner asks of a
//     scheme: how faces split (quads or triangles), the regular face size,
//     the regular vertex valence and how far a vertex's influence reaches.
//   - Rule and the sharpness helpers classify vertices by their crease rule
//     (smooth, dart, crease, corner) and decay semi-sharp values per level.
//   - Options carry the boundary, face-varying and creasing choices that
//     affect tagging.
//
// Nothing here computes vertex positions; only the topological side of each
// scheme is modelled.
//
// Quick reference:
//
//	scheme     split   face size  valence  neighborhood
//	Bilinear   quads   4          4        0
//	Catmark    quads   4          4        1
//	Loop       tris    3          6        1
package scheme
