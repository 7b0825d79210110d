// Package bfs provides breadth-first search over the faces of a
// topology.Level, returning face-hop distances, parent links, visit order
// and connected components (shells).
//
// What
//
//   - Two faces are neighbors when they share an edge.
//   - Explore faces in non-decreasing distance (shared-edge hops) from a
//     start face. Returns a Result containing:
//   - Order: visit sequence
//   - Depth: per face, its distance from the start (-1 if unreached)
//   - Parent: per face, its predecessor in the BFS tree (-1 for the start
//     and unreached faces)
//   - OnVisit hook; returning an error aborts the search.
//   - Neighbor filtering via WithFilterNeighbor, e.g. StopAtSharpEdges to
//     keep the walk inside a region bounded by creases.
//   - Components labels every face with the index of its shell.
//
// Determinism
//
//	Neighbors are visited in face-edge order (edge i joins corner i and i+1)
//	and, per edge, in incident-face order, so the visit sequence is fully
//	reproducible for a given level.
//
// Complexity (F = faces, C = face-vertices total)
//
//   - Time:   O(F + C) for BFS and for Components.
//   - Memory: O(F).
//
// Errors
//
//   - ErrLevelNil            if the level pointer is nil.
//   - ErrStartFaceNotFound   if the start face does not exist.
//   - ErrNoAdjacency         if the level lacks full topology (edge-faces).
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
