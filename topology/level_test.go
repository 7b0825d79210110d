// SPDX-License-Identifier: MIT
// Package topology_test verifies base-level construction and tagging.

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// LevelSuite covers NewBaseLevel, the Set* mutators and Finalize.
type LevelSuite struct {
	suite.Suite
}

func TestLevelSuite(t *testing.T) {
	suite.Run(t, new(LevelSuite))
}

// TestNewBaseLevelErrors checks every validation sentinel.
func (s *LevelSuite) TestNewBaseLevelErrors() {
	cases := []struct {
		name  string
		verts int
		faces [][]int
		want  error
	}{
		{"NoVertices", 0, [][]int{{0, 1, 2}}, topology.ErrInvalidTopology},
		{"NoFaces", 3, nil, topology.ErrInvalidTopology},
		{"TwoCorners", 3, [][]int{{0, 1}}, topology.ErrInvalidTopology},
		{"OutOfRange", 3, [][]int{{0, 1, 3}}, topology.ErrVertexOutOfRange},
		{"Negative", 3, [][]int{{0, -1, 2}}, topology.ErrVertexOutOfRange},
		{"Degenerate", 3, [][]int{{0, 0, 1}}, topology.ErrDegenerateFace},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			l, err := topology.NewBaseLevel(tc.verts, tc.faces)
			s.Require().ErrorIs(err, tc.want)
			s.Nil(l)
		})
	}
}

// TestCubeCounts checks derived relations of a closed quad mesh.
func (s *LevelSuite) TestCubeCounts() {
	l := mustLevel(s.T(), 8, cubeFaces(), scheme.Catmark, scheme.DefaultOptions())

	s.Equal(0, l.Depth())
	s.Equal(8, l.NumVertices())
	s.Equal(12, l.NumEdges())
	s.Equal(6, l.NumFaces())
	s.Equal(24, l.NumFaceVerticesTotal())
	s.Equal(3, l.MaxValence())
	s.True(l.HasFullTopology())
	s.True(l.IsFinalized())
	s.False(l.HasHoles())

	for e := 0; e < l.NumEdges(); e++ {
		s.Len(l.EdgeFaces(e), 2, "edge %d", e)
		s.False(l.EdgeTag(e).Boundary)
	}
	for v := 0; v < l.NumVertices(); v++ {
		tag := l.VertexTag(v)
		s.Len(l.VertexFaces(v), 3)
		s.True(tag.Xordinary, "vertex %d", v)
		s.False(tag.Boundary)
		s.False(tag.NonManifold)
		s.Equal(scheme.RuleSmooth, tag.Rule)
	}
	s.Equal(-1, l.FindEdge(0, 6))
	s.GreaterOrEqual(l.FindEdge(0, 1), 0)
	s.Contains(l.String(), "faces=6")
}

// TestVertexRingOrder checks that consecutive ring faces share a ring edge.
func (s *LevelSuite) TestVertexRingOrder() {
	n, faces := torusFaces(4, 4)
	l := mustLevel(s.T(), n, faces, scheme.Catmark, scheme.DefaultOptions())

	for v := 0; v < l.NumVertices(); v++ {
		vf := l.VertexFaces(v)
		ve := l.VertexEdges(v)
		s.Require().Len(vf, 4)
		s.Require().Len(ve, 4)
		for i, e := range ve {
			s.Contains(l.EdgeFaces(e), vf[i], "vertex %d edge %d", v, i)
		}
		tag := l.VertexTag(v)
		s.False(tag.Xordinary)
		s.Equal(scheme.RuleSmooth, tag.Rule)
	}
}

// TestGridBoundaryTags checks boundary sharpening under both boundary modes.
func (s *LevelSuite) TestGridBoundaryTags() {
	n, faces := gridFaces(2, 2)

	edgeOnly := mustLevel(s.T(), n, faces, scheme.Catmark, scheme.DefaultOptions())
	corner := edgeOnly.VertexTag(0)
	s.True(corner.Boundary)
	s.False(corner.Corner)
	s.Equal(scheme.RuleCrease, corner.Rule)
	s.True(corner.Xordinary)
	s.True(corner.InfIrregular)

	mid := edgeOnly.VertexTag(1)
	s.True(mid.Boundary)
	s.Equal(scheme.RuleCrease, mid.Rule)
	s.False(mid.Xordinary)
	s.True(mid.InfSharpCrease)
	s.False(mid.InfIrregular)

	center := edgeOnly.VertexTag(4)
	s.False(center.Boundary)
	s.False(center.Xordinary)
	s.Equal(scheme.RuleSmooth, center.Rule)

	opts := scheme.DefaultOptions()
	opts.VtxBoundaryInterpolation = scheme.BoundaryEdgeAndCorner
	sharpCorners := mustLevel(s.T(), n, faces, scheme.Catmark, opts)
	corner = sharpCorners.VertexTag(0)
	s.True(corner.Corner)
	s.True(corner.InfSharp)
	s.Equal(scheme.RuleCorner, corner.Rule)
	s.False(corner.Xordinary)
	s.False(corner.InfIrregular)
	s.Equal(scheme.SharpnessInfinite, sharpCorners.VertexSharpness(0))
}

// TestBoundaryNone checks that faces touching the boundary become holes only
// for schemes with a non-zero neighborhood.
func (s *LevelSuite) TestBoundaryNone() {
	n, faces := gridFaces(3, 3)
	opts := scheme.DefaultOptions()
	opts.VtxBoundaryInterpolation = scheme.BoundaryNone

	catmark := mustLevel(s.T(), n, faces, scheme.Catmark, opts)
	s.True(catmark.HasHoles())
	for f := 0; f < catmark.NumFaces(); f++ {
		// only the center face has no boundary vertex
		s.Equal(f != 4, catmark.IsFaceHole(f), "face %d", f)
	}
	for e := 0; e < catmark.NumEdges(); e++ {
		s.False(catmark.EdgeTag(e).InfSharp)
	}

	bilinear := mustLevel(s.T(), n, faces, scheme.Bilinear, opts)
	s.False(bilinear.HasHoles())
}

// TestNonManifoldFin checks that an edge shared by three faces is sharpened.
func (s *LevelSuite) TestNonManifoldFin() {
	faces := [][]int{{0, 1, 2, 3}, {1, 0, 4, 5}, {0, 1, 6, 7}}
	l := mustLevel(s.T(), 8, faces, scheme.Catmark, scheme.DefaultOptions())

	e := l.FindEdge(0, 1)
	s.Require().GreaterOrEqual(e, 0)
	s.True(l.EdgeTag(e).NonManifold)
	s.True(l.EdgeTag(e).InfSharp)
	s.Len(l.EdgeFaces(e), 3)

	tag := l.VertexTag(0)
	s.True(tag.NonManifold)
	s.True(tag.InfSharp)
	s.Equal(scheme.RuleCorner, tag.Rule)
}

// TestSharpnessAndMutators checks the level-0 mutators and their guards.
func (s *LevelSuite) TestSharpnessAndMutators() {
	l, err := topology.NewBaseLevel(8, cubeFaces())
	s.Require().NoError(err)

	e := l.FindEdge(0, 1)
	s.Require().NoError(l.SetEdgeSharpness(e, 2.5))
	s.Require().NoError(l.SetVertexSharpness(6, 42))
	s.Require().NoError(l.SetFaceHole(1))
	s.ErrorIs(l.SetEdgeSharpness(99, 1), topology.ErrComponentOutOfRange)
	s.ErrorIs(l.SetVertexSharpness(8, 1), topology.ErrVertexOutOfRange)
	s.ErrorIs(l.SetFaceHole(-1), topology.ErrComponentOutOfRange)

	s.Require().NoError(l.Finalize(scheme.Catmark, scheme.DefaultOptions()))
	s.Equal(float32(2.5), l.EdgeSharpness(e))
	s.Equal(scheme.SharpnessInfinite, l.VertexSharpness(6))
	s.True(l.EdgeTag(e).SemiSharp)
	s.True(l.VertexTag(0).SemiSharpEdges)
	s.Equal(scheme.RuleDart, l.VertexTag(0).Rule)
	s.True(l.VertexTag(6).InfSharp)
	s.Equal(scheme.RuleCorner, l.VertexTag(6).Rule)
	s.True(l.IsFaceHole(1))

	s.ErrorIs(l.SetEdgeSharpness(e, 1), topology.ErrLevelFinalized)
	s.ErrorIs(l.SetFaceHole(0), topology.ErrLevelFinalized)
	s.ErrorIs(l.Finalize(scheme.Catmark, scheme.DefaultOptions()), topology.ErrLevelFinalized)
	_, err = l.AddFVarChannel(scheme.FVarLinearNone, 1, nil)
	s.ErrorIs(err, topology.ErrLevelFinalized)
}

// TestLoopRequiresTriangles checks the Loop face-size precondition.
func (s *LevelSuite) TestLoopRequiresTriangles() {
	l, err := topology.NewBaseLevel(8, cubeFaces())
	s.Require().NoError(err)
	s.ErrorIs(l.Finalize(scheme.Loop, scheme.DefaultOptions()), topology.ErrNonTriangularFace)

	// holes are split like any other face
	holed, err := topology.NewBaseLevel(6, [][]int{{0, 1, 2}, {0, 2, 3}, {1, 4, 5, 2}})
	s.Require().NoError(err)
	s.Require().NoError(holed.SetFaceHole(2))
	s.ErrorIs(holed.Finalize(scheme.Loop, scheme.DefaultOptions()), topology.ErrNonTriangularFace)
	s.False(holed.IsFinalized())

	tet := mustLevel(s.T(), 4, tetraFaces(), scheme.Loop, scheme.DefaultOptions())
	for v := 0; v < 4; v++ {
		s.True(tet.VertexTag(v).Xordinary)
	}
}

// TestSingleCreasePatch checks detection along a semi-sharp torus ring.
func TestSingleCreasePatch(t *testing.T) {
	n, faces := torusFaces(4, 4)
	l, err := topology.NewBaseLevel(n, faces)
	require.NoError(t, err)
	for c := 0; c < 4; c++ {
		e := l.FindEdge(c, (c+1)%4)
		require.GreaterOrEqual(t, e, 0)
		require.NoError(t, l.SetEdgeSharpness(e, 2))
	}
	require.NoError(t, l.Finalize(scheme.Catmark, scheme.DefaultOptions()))

	for c := 0; c < 4; c++ {
		assert.Equal(t, scheme.RuleCrease, l.VertexTag(c).Rule, "vertex %d", c)
		assert.True(t, l.IsSingleCreasePatch(c), "face above crease %d", c)
		assert.True(t, l.IsSingleCreasePatch(12+c), "face below crease %d", c)
		assert.False(t, l.IsSingleCreasePatch(4+c), "smooth face %d", 4+c)
	}
}

// TestSingleCreasePatchRejectsDart checks that a crease ending inside the
// face does not qualify.
func TestSingleCreasePatchRejectsDart(t *testing.T) {
	n, faces := torusFaces(4, 4)
	l, err := topology.NewBaseLevel(n, faces)
	require.NoError(t, err)
	require.NoError(t, l.SetEdgeSharpness(l.FindEdge(0, 1), 2))
	require.NoError(t, l.Finalize(scheme.Catmark, scheme.DefaultOptions()))

	assert.Equal(t, scheme.RuleDart, l.VertexTag(0).Rule)
	assert.False(t, l.IsSingleCreasePatch(0))
}

func TestCombineVertexTags(t *testing.T) {
	a := topology.VertexTag{Boundary: true, Rule: scheme.RuleSmooth}
	b := topology.VertexTag{Xordinary: true, Rule: scheme.RuleCrease}
	got := topology.CombineVertexTags([]topology.VertexTag{a, b})
	assert.True(t, got.Boundary)
	assert.True(t, got.Xordinary)
	assert.Equal(t, scheme.RuleSmooth|scheme.RuleCrease, got.Rule)
	assert.Equal(t, topology.VertexTag{}, topology.CombineVertexTags(nil))
}
