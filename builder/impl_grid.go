// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_grid.go — implementation of Grid(rows, cols) and Torus(rows, cols).
//
// Canonical model:
//   • Vertices are numbered row-major; quad (r,c) lists its corners
//     counter-clockwise: (r,c), (r,c+1), (r+1,c+1), (r+1,c).
//   • Grid is open: (rows+1)·(cols+1) vertices, boundary on all four sides,
//     topological corners at the four extreme vertices.
//   • Torus wraps both directions: rows·cols vertices, all of valence 4.
//
// Contract:
//   • Grid:  rows, cols ≥ MinGridDim  (else ErrTooFewVertices).
//   • Torus: rows, cols ≥ MinTorusDim (else ErrTooFewVertices).
//   • Faces are emitted row-major; face (r,c) has index r·cols + c.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(rows·cols) for the face lists.

package builder

import "github.com/katalvlaran/subdiv/refiner"

// Grid returns a Constructor that appends an open rows×cols quad grid.
func Grid(rows, cols int) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if err := validateMin(MethodGrid, min(rows, cols), MinGridDim); err != nil {
			return err
		}

		w := cols + 1
		faces := make([][]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*w + c
				faces = append(faces, []int{v, v + 1, v + w + 1, v + w})
			}
		}
		return appendComponent(MethodGrid, d, (rows+1)*w, faces)
	}
}

// Torus returns a Constructor that appends a closed rows×cols quad torus.
func Torus(rows, cols int) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if err := validateMin(MethodTorus, min(rows, cols), MinTorusDim); err != nil {
			return err
		}

		at := func(r, c int) int { return (r%rows)*cols + c%cols }
		faces := make([][]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				faces = append(faces, []int{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)})
			}
		}
		return appendComponent(MethodTorus, d, rows*cols, faces)
	}
}
