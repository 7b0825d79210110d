// SPDX-License-Identifier: MIT
// Package refiner_test holds mesh fixtures shared by the refiner tests.

package refiner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

// cubeDesc describes a closed cube: eight valence-3 vertices.
func cubeDesc() *refiner.TopologyDescriptor {
	return &refiner.TopologyDescriptor{
		NumVertices: 8,
		FaceVertices: [][]int{
			{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
			{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
		},
	}
}

// torusDesc describes a closed rows×cols quad torus; every vertex is regular.
func torusDesc(rows, cols int) *refiner.TopologyDescriptor {
	at := func(r, c int) int { return (r%rows)*cols + c%cols }
	d := &refiner.TopologyDescriptor{NumVertices: rows * cols}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d.FaceVertices = append(d.FaceVertices, []int{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)})
		}
	}
	return d
}

// gridDesc describes an open rows×cols quad grid.
func gridDesc(rows, cols int) *refiner.TopologyDescriptor {
	w := cols + 1
	d := &refiner.TopologyDescriptor{NumVertices: (rows + 1) * w}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*w + c
			d.FaceVertices = append(d.FaceVertices, []int{v, v + 1, v + w + 1, v + w})
		}
	}
	return d
}

// fanDesc describes n quads around interior vertex 0, which has valence n.
func fanDesc(n int) *refiner.TopologyDescriptor {
	d := &refiner.TopologyDescriptor{NumVertices: 2*n + 1}
	for i := 0; i < n; i++ {
		spoke := 1 + 2*i
		next := 1 + 2*((i+1)%n)
		d.FaceVertices = append(d.FaceVertices, []int{0, spoke, spoke + 1, next})
	}
	return d
}

// seamed gives every face corner of d its own value.
func seamed(d *refiner.TopologyDescriptor, interp string) refiner.FVarChannelDesc {
	ch := refiner.FVarChannelDesc{Interpolation: interp}
	for _, fv := range d.FaceVertices {
		vals := make([]int, len(fv))
		for i := range fv {
			vals[i] = ch.NumValues
			ch.NumValues++
		}
		ch.FaceValues = append(ch.FaceValues, vals)
	}
	return ch
}

// mustRefiner builds a Catmark refiner with default options from d.
func mustRefiner(t *testing.T, d *refiner.TopologyDescriptor, opts ...refiner.Option) *refiner.TopologyRefiner {
	t.Helper()
	r, err := refiner.NewFromDescriptor(d, scheme.Catmark, scheme.DefaultOptions(), opts...)
	require.NoError(t, err)
	return r
}
