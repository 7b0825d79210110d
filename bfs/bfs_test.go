package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/bfs"
	"github.com/katalvlaran/subdiv/builder"
	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// baseLevel builds a finalized Catmark base level from constructors.
func baseLevel(t *testing.T, cons ...builder.Constructor) *topology.Level {
	t.Helper()
	d, err := builder.BuildDescriptor(nil, cons...)
	require.NoError(t, err)
	l, err := d.BuildBaseLevel(scheme.Catmark, scheme.DefaultOptions())
	require.NoError(t, err)
	return l
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrLevelNil)

	l := baseLevel(t, builder.Grid(2, 2))
	_, err = bfs.BFS(l, 4)
	assert.ErrorIs(t, err, bfs.ErrStartFaceNotFound)
	_, err = bfs.BFS(l, -1)
	assert.ErrorIs(t, err, bfs.ErrStartFaceNotFound)
	_, err = bfs.BFS(l, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	r, err := builder.BuildRefiner(scheme.Catmark, scheme.DefaultOptions(), nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	require.NoError(t, r.RefineUniform(refiner.DefaultUniformOptions(1)))
	last, err := r.Level(1)
	require.NoError(t, err)
	_, err = bfs.BFS(last.Topology(), 0)
	assert.ErrorIs(t, err, bfs.ErrNoAdjacency)
	_, _, err = bfs.Components(last.Topology())
	assert.ErrorIs(t, err, bfs.ErrNoAdjacency)
}

// TestGridOrderAndDepths covers layering on a 3×3 quad grid.
func TestGridOrderAndDepths(t *testing.T) {
	l := baseLevel(t, builder.Grid(3, 3))
	res, err := bfs.BFS(l, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1, 2, 3, 2, 3, 4}, res.Depth)
	assert.Equal(t, -1, res.Parent[0])

	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, path)
}

func TestMaxDepth(t *testing.T) {
	l := baseLevel(t, builder.Grid(3, 3))
	res, err := bfs.BFS(l, 4, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{4, 1, 3, 5, 7}, res.Order)
	assert.Equal(t, -1, res.Depth[0])

	_, err = res.PathTo(0)
	assert.Error(t, err)
}

func TestComponents(t *testing.T) {
	l := baseLevel(t, builder.PlatonicSolid(builder.Cube), builder.PlatonicSolid(builder.Tetrahedron))
	labels, n, err := bfs.Components(l, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}, labels)
}

// TestStopAtSharpEdges splits a strip along an interior crease.
func TestStopAtSharpEdges(t *testing.T) {
	l := baseLevel(t, builder.Grid(1, 2), builder.Crease(1, 4, scheme.SharpnessInfinite))

	_, n, err := bfs.Components(l)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	labels, n, err := bfs.Components(l, bfs.WithFilterNeighbor(bfs.StopAtSharpEdges(l)))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{0, 1}, labels)
}

func TestSkipHoles(t *testing.T) {
	l := baseLevel(t, builder.Grid(1, 3), builder.Hole(1))
	res, err := bfs.BFS(l, 0, bfs.WithFilterNeighbor(bfs.SkipHoles(l)))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, -1, res.Depth[2])
}

func TestOnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	l := baseLevel(t, builder.PlatonicSolid(builder.Octahedron))

	var visited []int
	_, err := bfs.BFS(l, 0, bfs.WithOnVisit(func(face, depth int) error {
		visited = append(visited, face)
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Len(t, visited, 2)
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := baseLevel(t, builder.Torus(4, 4))
	_, err := bfs.BFS(l, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
