// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_cycle.go — implementation of Polygon(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices and one face {0, 1, ..., n-1} (offset).
//   • Every vertex is a boundary corner: one face, two boundary edges.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the face.

package builder

import "github.com/katalvlaran/subdiv/refiner"

// Polygon returns a Constructor that appends a single n-sided face.
func Polygon(n int) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if err := validateMin(MethodPolygon, n, MinPolygonSides); err != nil {
			return err
		}

		face := make([]int, n)
		for i := range face {
			face[i] = i
		}
		return appendComponent(MethodPolygon, d, n, [][]int{face})
	}
}
