// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// fvar.go — face-varying channels: per-corner value topology, mismatch
// detection against the vertex topology, and face-varying vertex tags.

package topology

import "github.com/katalvlaran/subdiv/scheme"

// FVarChannel is one face-varying channel of a level. Every face corner
// refers to a value index; corners of the same vertex with different values
// form a face-varying boundary (a seam).
type FVarChannel struct {
	interp     scheme.FVarLinearInterpolation
	numValues  int
	faceValues [][]int

	// Derived by computeTags; nil when the owning level has no incidence.
	vertMismatch  []bool
	vertComposite []VertexTag
}

// Interpolation returns the linear interpolation mode of the channel.
func (c *FVarChannel) Interpolation() scheme.FVarLinearInterpolation { return c.interp }

// IsLinear reports whether all face-varying data is interpolated linearly,
// in which case its topology never affects refinement.
func (c *FVarChannel) IsLinear() bool { return c.interp == scheme.FVarLinearAll }

// NumValues returns the number of distinct values in the channel.
func (c *FVarChannel) NumValues() int { return c.numValues }

// FaceValues returns the value indices of the corners of face f.
func (c *FVarChannel) FaceValues(f int) []int { return c.faceValues[f] }

// IsVertexMismatched reports whether vertex v lies on a face-varying boundary
// that differs from its vertex topology.
func (c *FVarChannel) IsVertexMismatched(v int) bool {
	return c.vertMismatch != nil && c.vertMismatch[v]
}

// computeTags derives mismatch flags and composite tags for every vertex of l.
func (c *FVarChannel) computeTags(l *Level) {
	if l.vertFaces == nil {
		c.vertMismatch, c.vertComposite = nil, nil
		return
	}
	c.vertMismatch = make([]bool, l.numVertices)
	c.vertComposite = make([]VertexTag, l.numVertices)

	for v := 0; v < l.numVertices; v++ {
		main := l.vertTags[v]
		c.vertComposite[v] = main

		values, sectorFaces := c.vertexValues(l, v)
		if len(values) == 0 {
			continue
		}
		if len(values) == 1 && !main.Boundary {
			continue
		}

		composite := main
		mismatch := len(values) > 1
		for i, val := range values {
			tag := c.valueTag(l, v, val, sectorFaces[i], len(values))
			if tag.Rule != main.Rule {
				mismatch = true
			}
			composite = composite.Or(tag)
		}
		c.vertMismatch[v] = mismatch
		if mismatch {
			c.vertComposite[v] = composite
		}
	}
}

// vertexValues lists the distinct values of channel c around vertex v, in
// order of first appearance in the ring, with the number of faces sharing
// each value.
func (c *FVarChannel) vertexValues(l *Level, v int) ([]int, []int) {
	var values, counts []int
	for _, f := range l.vertFaces[v] {
		i := l.faceCorner(f, v)
		if i < 0 {
			continue
		}
		val := c.faceValues[f][i]
		found := false
		for k, seen := range values {
			if seen == val {
				counts[k]++
				found = true
				break
			}
		}
		if !found {
			values = append(values, val)
			counts = append(counts, 1)
		}
	}
	return values, counts
}

// valueTag returns the tag of the sector of vertex v sharing value val.
// The sector is bounded by face-varying or mesh boundaries, so it always
// behaves as a boundary; its rule follows the interpolation mode.
func (c *FVarChannel) valueTag(l *Level, v, val, sectorFaces, numValues int) VertexTag {
	tag := l.vertTags[v]
	tag.Boundary = true
	tag.InfSharpEdges = true

	switch {
	case c.interp == scheme.FVarLinearAll || c.interp == scheme.FVarLinearBoundaries:
		tag.Rule = scheme.RuleCorner
	case c.interp != scheme.FVarLinearNone && sectorFaces == 1:
		tag.Rule = scheme.RuleCorner
	case (c.interp == scheme.FVarLinearCornersPlus1 || c.interp == scheme.FVarLinearCornersPlus2) && numValues > 2:
		tag.Rule = scheme.RuleCorner
	case l.vertTags[v].InfSharp:
		tag.Rule = scheme.RuleCorner
	default:
		tag.Rule = scheme.DetermineVertexRule(scheme.SharpnessSmooth, 2+c.infInteriorEdges(l, v, val))
	}

	regularBoundary := scheme.RegularBoundaryValence(l.schemeType)
	switch tag.Rule {
	case scheme.RuleCrease:
		tag.InfSharpCrease = true
		tag.Xordinary = sectorFaces != regularBoundary
		tag.InfIrregular = tag.Xordinary
	case scheme.RuleCorner:
		tag.InfSharpCrease = false
		tag.Xordinary = false
		tag.InfIrregular = sectorFaces != 1
	default:
		tag.InfIrregular = true
	}
	return tag
}

// infInteriorEdges counts infinitely sharp edges at v whose faces both carry
// value val at v, i.e. sharp edges inside one face-varying sector.
func (c *FVarChannel) infInteriorEdges(l *Level, v, val int) int {
	n := 0
	for _, e := range l.vertEdges[v] {
		if !l.edgeTags[e].InfSharp {
			continue
		}
		ef := l.edgeFaces[e]
		if len(ef) != 2 {
			continue
		}
		inside := true
		for _, f := range ef {
			i := l.faceCorner(f, v)
			if i < 0 || c.faceValues[f][i] != val {
				inside = false
			}
		}
		if inside {
			n++
		}
	}
	return n
}
