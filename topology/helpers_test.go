// SPDX-License-Identifier: MIT
// Package topology_test holds fixtures shared by the topology tests.

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// cubeFaces returns the six outward-wound quads of a cube on 8 vertices.
func cubeFaces() [][]int {
	return [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
}

// tetraFaces returns the four triangles of a tetrahedron on 4 vertices.
func tetraFaces() [][]int {
	return [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}
}

// gridFaces returns rows×cols quads over (rows+1)×(cols+1) vertices.
func gridFaces(rows, cols int) (int, [][]int) {
	w := cols + 1
	faces := make([][]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*w + c
			faces = append(faces, []int{v, v + 1, v + w + 1, v + w})
		}
	}
	return (rows + 1) * w, faces
}

// torusFaces returns a closed rows×cols quad torus over rows*cols vertices.
func torusFaces(rows, cols int) (int, [][]int) {
	at := func(r, c int) int { return (r%rows)*cols + c%cols }
	faces := make([][]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			faces = append(faces, []int{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)})
		}
	}
	return rows * cols, faces
}

// mustLevel builds and finalizes a base level.
func mustLevel(t *testing.T, numVerts int, faces [][]int, typ scheme.Type, opts scheme.Options) *topology.Level {
	t.Helper()
	l, err := topology.NewBaseLevel(numVerts, faces)
	require.NoError(t, err)
	require.NoError(t, l.Finalize(typ, opts))
	return l
}

// refineDense splits every face of parent and returns the refinement.
func refineDense(t *testing.T, parent *topology.Level, opts topology.RefinementOptions) *topology.Refinement {
	t.Helper()
	child := topology.NewLevel()
	var r *topology.Refinement
	if scheme.TopologicalSplitType(parent.SchemeType()) == scheme.SplitToTris {
		r = topology.NewTriRefinement(parent, child, scheme.DefaultOptions())
	} else {
		r = topology.NewQuadRefinement(parent, child, scheme.DefaultOptions())
	}
	require.NoError(t, r.Refine(opts))
	return r
}
