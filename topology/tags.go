// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// tags.go — per-component tags.

package topology

import "github.com/katalvlaran/subdiv/scheme"

// VertexTag summarizes the topological and sharpness features of a vertex.
// Tags of several vertices may be combined with Or to describe a face.
type VertexTag struct {
	NonManifold    bool        // non-manifold neighborhood
	Xordinary      bool        // valence differs from the regular one
	Boundary       bool        // on a mesh (or face-varying) boundary
	Corner         bool        // topological corner sharpened by the boundary option
	InfSharp       bool        // vertex sharpness is infinite
	SemiSharp      bool        // vertex sharpness is semi-sharp
	SemiSharpEdges bool        // at least one incident semi-sharp edge
	Rule           scheme.Rule // crease rule
	Incomplete     bool        // neighborhood not fully present in a sparse level
	InfSharpEdges  bool        // at least one incident infinitely sharp edge
	InfSharpCrease bool        // infinitely sharp edges form a crease
	InfIrregular   bool        // inf-sharp features form an irregular pattern
}

// Or returns the bitwise union of t and o.
func (t VertexTag) Or(o VertexTag) VertexTag {
	return VertexTag{
		NonManifold:    t.NonManifold || o.NonManifold,
		Xordinary:      t.Xordinary || o.Xordinary,
		Boundary:       t.Boundary || o.Boundary,
		Corner:         t.Corner || o.Corner,
		InfSharp:       t.InfSharp || o.InfSharp,
		SemiSharp:      t.SemiSharp || o.SemiSharp,
		SemiSharpEdges: t.SemiSharpEdges || o.SemiSharpEdges,
		Rule:           t.Rule | o.Rule,
		Incomplete:     t.Incomplete || o.Incomplete,
		InfSharpEdges:  t.InfSharpEdges || o.InfSharpEdges,
		InfSharpCrease: t.InfSharpCrease || o.InfSharpCrease,
		InfIrregular:   t.InfIrregular || o.InfIrregular,
	}
}

// CombineVertexTags ORs all tags together. An empty slice yields the zero tag.
func CombineVertexTags(tags []VertexTag) VertexTag {
	var out VertexTag
	for _, t := range tags {
		out = out.Or(t)
	}
	return out
}

// EdgeTag summarizes the features of an edge.
type EdgeTag struct {
	NonManifold bool
	Boundary    bool
	InfSharp    bool
	SemiSharp   bool
}

// FaceTag summarizes the features of a face.
type FaceTag struct {
	Hole bool
}
