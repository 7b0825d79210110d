// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// level_tags.go — tagging a base level for a subdivision scheme.

package topology

import (
	"fmt"

	"github.com/katalvlaran/subdiv/scheme"
)

// Finalize tags the base level for scheme t and options opts. It sharpens
// boundary and non-manifold features, derives every vertex tag and tags each
// face-varying channel. After Finalize the level is immutable.
//
// For Loop every face, holes included, must be a triangle
// (ErrNonTriangularFace); the triangle split does not skip holes.
func (l *Level) Finalize(t scheme.Type, opts scheme.Options) error {
	if err := l.checkBaseMutable("Finalize"); err != nil {
		return err
	}
	if l.numVertices == 0 {
		return fmt.Errorf("Finalize: empty level: %w", ErrInvalidTopology)
	}
	if scheme.TopologicalSplitType(t) == scheme.SplitToTris {
		for f, fv := range l.faceVerts {
			if len(fv) != 3 {
				return fmt.Errorf("Finalize: face %d has %d corners: %w", f, len(fv), ErrNonTriangularFace)
			}
		}
	}

	l.schemeType = t
	l.schemeOptions = opts

	l.tagEdges(opts)
	if opts.VtxBoundaryInterpolation == scheme.BoundaryNone && scheme.LocalNeighborhoodSize(t) > 0 {
		l.holeBoundaryFaces()
	}
	l.tagVertices(t, opts)
	for _, ch := range l.fvar {
		ch.computeTags(l)
	}
	l.finalized = true
	return nil
}

// tagEdges sharpens boundary and non-manifold edges and sets sharpness tags.
func (l *Level) tagEdges(opts scheme.Options) {
	for e := range l.edgeVerts {
		tag := &l.edgeTags[e]
		if tag.Boundary && opts.VtxBoundaryInterpolation != scheme.BoundaryNone {
			l.edgeSharpness[e] = scheme.SharpnessInfinite
		}
		if tag.NonManifold {
			l.edgeSharpness[e] = scheme.SharpnessInfinite
		}
		tag.InfSharp = scheme.IsInfinite(l.edgeSharpness[e])
		tag.SemiSharp = scheme.IsSemiSharp(l.edgeSharpness[e])
	}
}

// holeBoundaryFaces tags every face touching a boundary vertex as a hole.
func (l *Level) holeBoundaryFaces() {
	for v := 0; v < l.numVertices; v++ {
		onBoundary := false
		for _, e := range l.vertEdges[v] {
			if l.edgeTags[e].Boundary {
				onBoundary = true
				break
			}
		}
		if !onBoundary {
			continue
		}
		for _, f := range l.vertFaces[v] {
			l.faceTags[f].Hole = true
		}
	}
}

// tagVertices derives the full VertexTag of every vertex.
func (l *Level) tagVertices(t scheme.Type, opts scheme.Options) {
	regularValence := scheme.RegularVertexValence(t)
	regularBoundary := scheme.RegularBoundaryValence(t)
	sharpenCorners := opts.VtxBoundaryInterpolation == scheme.BoundaryEdgeAndCorner

	for v := 0; v < l.numVertices; v++ {
		tag := &l.vertTags[v]
		vFaces := l.vertFaces[v]
		vEdges := l.vertEdges[v]

		var boundaryEdges, infEdges, semiEdges int
		for _, e := range vEdges {
			et := l.edgeTags[e]
			if et.Boundary {
				boundaryEdges++
			}
			if et.InfSharp {
				infEdges++
			}
			if et.SemiSharp {
				semiEdges++
			}
		}

		topologicalCorner := len(vFaces) == 1 && len(vEdges) == 2
		switch {
		case topologicalCorner && sharpenCorners:
			l.vertSharpness[v] = scheme.SharpnessInfinite
		case tag.NonManifold:
			l.vertSharpness[v] = scheme.SharpnessInfinite
		}
		vs := l.vertSharpness[v]

		tag.InfSharp = scheme.IsInfinite(vs)
		tag.SemiSharp = scheme.IsSemiSharp(vs)
		tag.SemiSharpEdges = semiEdges > 0
		tag.Rule = scheme.DetermineVertexRule(vs, infEdges+semiEdges)

		tag.Boundary = boundaryEdges > 0
		tag.Corner = topologicalCorner && sharpenCorners
		switch {
		case tag.Corner:
			tag.Xordinary = false
		case tag.Boundary:
			tag.Xordinary = len(vFaces) != regularBoundary
		default:
			tag.Xordinary = len(vFaces) != regularValence
		}
		tag.Incomplete = false

		tag.InfSharpEdges = infEdges > 0
		tag.InfSharpCrease = false
		tag.InfIrregular = tag.InfSharp || tag.InfSharpEdges

		if !tag.InfSharpEdges {
			continue
		}
		infVertexSharpness := scheme.SharpnessSmooth
		if tag.InfSharp {
			infVertexSharpness = vs
		}
		switch scheme.DetermineVertexRule(infVertexSharpness, infEdges) {
		case scheme.RuleCrease:
			tag.InfSharpCrease = true
			if !tag.NonManifold {
				if tag.Boundary {
					tag.InfIrregular = len(vFaces) != regularBoundary
				} else {
					tag.InfIrregular = !l.isInfSharpCreaseBisecting(v, regularValence)
				}
			}
		case scheme.RuleCorner:
			if infEdges == len(vEdges) && (len(vEdges) == 2 || len(vEdges) == 4) {
				tag.InfIrregular = false
			}
		}
	}
}

// isInfSharpCreaseBisecting reports whether the two infinitely sharp edges
// of an interior regular vertex lie opposite each other in its ring.
func (l *Level) isInfSharpCreaseBisecting(v, regularValence int) bool {
	ring := l.vertEdges[v]
	if len(ring) != regularValence || !l.vertOrdered[v] {
		return false
	}
	first := -1
	for i, e := range ring {
		if !l.edgeTags[e].InfSharp {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		return i-first == regularValence/2
	}
	return false
}
