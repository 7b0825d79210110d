// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_wheel.go — implementation of Fan(valence) and Wheel(n) constructors.
//
// Both place one interior hub at local index 0 with the given valence and
// surround it with a ring of boundary vertices; they differ in face shape.
//
// Contract:
//   • valence ≥ 3 (else ErrTooFewVertices).
//   • Fan:   2·valence+1 vertices; quad i = {0, s_i, c_i, s_{i+1}} with
//            spoke s_i = 1+2i and rim corner c_i = 2+2i.
//   • Wheel: valence+1 vertices; triangle i = {0, i+1, (i+1)%valence+1}.
//   • Faces are consistently wound; the hub is extraordinary unless the
//     valence is regular for the face shape (4 for quads, 6 for triangles).
//
// Complexity:
//   • Time: O(valence). Space: O(valence) for the face lists.

package builder

import "github.com/katalvlaran/subdiv/refiner"

// Fan returns a Constructor that appends valence quads around one interior
// vertex.
func Fan(valence int) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if err := validateMin(MethodFan, valence, MinFanValence); err != nil {
			return err
		}

		faces := make([][]int, valence)
		for i := 0; i < valence; i++ {
			spoke := 1 + 2*i
			next := 1 + 2*((i+1)%valence)
			faces[i] = []int{0, spoke, spoke + 1, next}
		}
		return appendComponent(MethodFan, d, 2*valence+1, faces)
	}
}

// Wheel returns a Constructor that appends n triangles around one interior
// vertex.
func Wheel(n int) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if err := validateMin(MethodWheel, n, MinFanValence); err != nil {
			return err
		}

		faces := make([][]int, n)
		for i := 0; i < n; i++ {
			faces[i] = []int{0, i + 1, (i+1)%n + 1}
		}
		return appendComponent(MethodWheel, d, n+1, faces)
	}
}
