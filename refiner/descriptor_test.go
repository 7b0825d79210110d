// SPDX-License-Identifier: MIT
// Package refiner_test verifies base levels built from descriptors.

package refiner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

func TestBuildBaseLevel(t *testing.T) {
	d := cubeDesc()
	d.Creases = []refiner.CreaseTag{{V0: 0, V1: 1, Sharpness: 2.5}}
	d.Corners = []refiner.CornerTag{{Vertex: 6, Sharpness: 1}}
	d.Holes = []int{1}
	d.FVarChannels = []refiner.FVarChannelDesc{seamed(d, ""), seamed(d, "corners-only")}

	opts := scheme.DefaultOptions()
	opts.FVarLinearInterpolation = scheme.FVarLinearBoundaries
	l, err := d.BuildBaseLevel(scheme.Catmark, opts)
	require.NoError(t, err)

	assert.True(t, l.IsFinalized())
	assert.Equal(t, float32(2.5), l.EdgeSharpness(l.FindEdge(1, 0)))
	assert.Equal(t, float32(1), l.VertexSharpness(6))
	assert.True(t, l.IsFaceHole(1))
	require.Equal(t, 2, l.NumFVarChannels())
	assert.Equal(t, scheme.FVarLinearBoundaries, l.FVarChannel(0).Interpolation())
	assert.Equal(t, scheme.FVarLinearCornersOnly, l.FVarChannel(1).Interpolation())
	assert.Equal(t, 24, l.NumFVarValues(1))
}

func TestBuildBaseLevelErrors(t *testing.T) {
	cases := []struct {
		name   string
		edit   func(d *refiner.TopologyDescriptor)
		typ    scheme.Type
		target error
	}{
		{"VertexRange", func(d *refiner.TopologyDescriptor) { d.FaceVertices[0][0] = 8 }, scheme.Catmark, topology.ErrVertexOutOfRange},
		{"NoFaces", func(d *refiner.TopologyDescriptor) { d.FaceVertices = nil }, scheme.Catmark, topology.ErrInvalidTopology},
		{"CreaseNotEdge", func(d *refiner.TopologyDescriptor) {
			d.Creases = []refiner.CreaseTag{{V0: 0, V1: 6, Sharpness: 1}}
		}, scheme.Catmark, nil},
		{"CreaseRange", func(d *refiner.TopologyDescriptor) {
			d.Creases = []refiner.CreaseTag{{V0: -1, V1: 0, Sharpness: 1}}
		}, scheme.Catmark, nil},
		{"CornerRange", func(d *refiner.TopologyDescriptor) {
			d.Corners = []refiner.CornerTag{{Vertex: 8, Sharpness: 1}}
		}, scheme.Catmark, topology.ErrVertexOutOfRange},
		{"HoleRange", func(d *refiner.TopologyDescriptor) { d.Holes = []int{6} }, scheme.Catmark, topology.ErrComponentOutOfRange},
		{"Interpolation", func(d *refiner.TopologyDescriptor) {
			d.FVarChannels = []refiner.FVarChannelDesc{seamed(d, "smooth")}
		}, scheme.Catmark, nil},
		{"ChannelValues", func(d *refiner.TopologyDescriptor) {
			ch := seamed(d, "none")
			ch.NumValues = 3
			d.FVarChannels = []refiner.FVarChannelDesc{ch}
		}, scheme.Catmark, topology.ErrInvalidFVarChannel},
		{"LoopQuads", func(*refiner.TopologyDescriptor) {}, scheme.Loop, topology.ErrNonTriangularFace},
		{"LoopQuadHole", func(d *refiner.TopologyDescriptor) {
			d.NumVertices = 6
			d.FaceVertices = [][]int{{0, 1, 2}, {0, 2, 3}, {1, 4, 5, 2}}
			d.Holes = []int{2}
		}, scheme.Loop, topology.ErrNonTriangularFace},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := cubeDesc()
			tc.edit(d)
			l, err := d.BuildBaseLevel(tc.typ, scheme.DefaultOptions())
			assert.Nil(t, l)
			assert.ErrorIs(t, err, refiner.ErrInvalidDescriptor)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}

	var nilDesc *refiner.TopologyDescriptor
	_, err := nilDesc.BuildBaseLevel(scheme.Catmark, scheme.DefaultOptions())
	assert.ErrorIs(t, err, refiner.ErrInvalidDescriptor)
}

func TestNewFromDescriptorReportsFatal(t *testing.T) {
	var kinds []refiner.ErrorKind
	d := cubeDesc()
	d.Holes = []int{42}
	r, err := refiner.NewFromDescriptor(d, scheme.Catmark, scheme.DefaultOptions(),
		refiner.WithErrorReporter(func(k refiner.ErrorKind, _ string) { kinds = append(kinds, k) }))
	assert.Nil(t, r)
	assert.ErrorIs(t, err, refiner.ErrInvalidDescriptor)
	assert.Equal(t, []refiner.ErrorKind{refiner.FatalError}, kinds)
}
