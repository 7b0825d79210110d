// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// level.go — the Level type and its read-only accessors.

package topology

import (
	"fmt"

	"github.com/katalvlaran/subdiv/scheme"
)

// Level is the topology of a mesh at one refinement depth.
//
// All relations are index based; component indices are dense in
// [0, NumVertices()), [0, NumEdges()) and [0, NumFaces()).
type Level struct {
	depth int

	schemeType    scheme.Type
	schemeOptions scheme.Options

	numVertices int

	faceVerts [][]int
	faceEdges [][]int
	edgeVerts [][2]int
	edgeFaces [][]int
	vertFaces [][]int
	vertEdges [][]int

	// vertOrdered marks vertices whose faces and edges are stored in ring order.
	vertOrdered []bool

	faceTags []FaceTag
	edgeTags []EdgeTag
	vertTags []VertexTag

	edgeSharpness []float32
	vertSharpness []float32

	numFaceVertsTotal int
	maxValence        int
	fullTopology      bool
	finalized         bool

	fvar []*FVarChannel
}

// NewLevel returns an empty level with no components. Such a level reports
// zero vertices and is what an uninitialized refiner holds as its base.
func NewLevel() *Level {
	return &Level{fullTopology: true}
}

// Depth is the refinement depth of the level (0 for the base mesh).
func (l *Level) Depth() int { return l.depth }

// SchemeType is the scheme the level was tagged for.
func (l *Level) SchemeType() scheme.Type { return l.schemeType }

// NumVertices returns the vertex count.
func (l *Level) NumVertices() int { return l.numVertices }

// NumEdges returns the edge count.
func (l *Level) NumEdges() int { return len(l.edgeVerts) }

// NumFaces returns the face count.
func (l *Level) NumFaces() int { return len(l.faceVerts) }

// NumFaceVerticesTotal returns the sum of all face sizes.
func (l *Level) NumFaceVerticesTotal() int { return l.numFaceVertsTotal }

// MaxValence returns the largest number of edges incident to one vertex.
func (l *Level) MaxValence() int { return l.maxValence }

// HasFullTopology reports whether all relations are populated. Levels built
// with minimal topology only carry face-vertices, counts and tags.
func (l *Level) HasFullTopology() bool { return l.fullTopology }

// IsFinalized reports whether the level carries tags.
func (l *Level) IsFinalized() bool { return l.finalized }

// FaceVertices returns the corners of face f in winding order.
// The slice is owned by the level and must not be modified.
func (l *Level) FaceVertices(f int) []int { return l.faceVerts[f] }

// FaceEdges returns the edges of face f; edge i joins corner i and i+1.
// It is nil for levels without full topology.
func (l *Level) FaceEdges(f int) []int {
	if l.faceEdges == nil {
		return nil
	}
	return l.faceEdges[f]
}

// EdgeVertices returns the two end vertices of edge e.
func (l *Level) EdgeVertices(e int) [2]int { return l.edgeVerts[e] }

// EdgeFaces returns the faces incident to edge e.
func (l *Level) EdgeFaces(e int) []int {
	if l.edgeFaces == nil {
		return nil
	}
	return l.edgeFaces[e]
}

// VertexFaces returns the faces incident to vertex v, in ring order when the
// vertex is manifold.
func (l *Level) VertexFaces(v int) []int {
	if l.vertFaces == nil {
		return nil
	}
	return l.vertFaces[v]
}

// VertexEdges returns the edges incident to vertex v, in ring order when the
// vertex is manifold.
func (l *Level) VertexEdges(v int) []int {
	if l.vertEdges == nil {
		return nil
	}
	return l.vertEdges[v]
}

// VertexTag returns the tag of vertex v.
func (l *Level) VertexTag(v int) VertexTag { return l.vertTags[v] }

// EdgeTag returns the tag of edge e.
func (l *Level) EdgeTag(e int) EdgeTag { return l.edgeTags[e] }

// FaceTag returns the tag of face f.
func (l *Level) FaceTag(f int) FaceTag { return l.faceTags[f] }

// IsFaceHole reports whether face f is tagged as a hole.
func (l *Level) IsFaceHole(f int) bool { return l.faceTags[f].Hole }

// HasHoles reports whether any face is a hole.
func (l *Level) HasHoles() bool {
	for _, t := range l.faceTags {
		if t.Hole {
			return true
		}
	}
	return false
}

// EdgeSharpness returns the sharpness of edge e.
func (l *Level) EdgeSharpness(e int) float32 { return l.edgeSharpness[e] }

// VertexSharpness returns the sharpness of vertex v.
func (l *Level) VertexSharpness(v int) float32 { return l.vertSharpness[v] }

// FaceVertexTags returns the tags of the corners of face f in winding order.
func (l *Level) FaceVertexTags(f int) []VertexTag {
	fv := l.faceVerts[f]
	tags := make([]VertexTag, len(fv))
	for i, v := range fv {
		tags[i] = l.vertTags[v]
	}
	return tags
}

// FindEdge returns the edge joining v0 and v1, or -1.
func (l *Level) FindEdge(v0, v1 int) int {
	if l.vertEdges == nil {
		return -1
	}
	for _, e := range l.vertEdges[v0] {
		ev := l.edgeVerts[e]
		if (ev[0] == v0 && ev[1] == v1) || (ev[0] == v1 && ev[1] == v0) {
			return e
		}
	}
	return -1
}

// faceCorner returns the position of v within face f, or -1.
func (l *Level) faceCorner(f, v int) int {
	for i, fv := range l.faceVerts[f] {
		if fv == v {
			return i
		}
	}
	return -1
}

// IsSingleCreasePatch reports whether face f is a regular interior quad
// whose only feature is one uniformly sharp crease running along one of its
// edges: both ends of that edge are regular crease vertices continuing the
// crease straight through, and the two remaining corners are smooth.
func (l *Level) IsSingleCreasePatch(f int) bool {
	fv := l.faceVerts[f]
	if len(fv) != 4 || !l.fullTopology {
		return false
	}

	tags := l.FaceVertexTags(f)
	comp := CombineVertexTags(tags)
	if comp.Boundary || comp.Xordinary || comp.NonManifold || comp.Incomplete {
		return false
	}
	if comp.Rule != scheme.RuleSmooth|scheme.RuleCrease {
		return false
	}

	fe := l.faceEdges[f]
	for k := 0; k < 4; k++ {
		if tags[k].Rule != scheme.RuleCrease || tags[(k+1)%4].Rule != scheme.RuleCrease {
			continue
		}
		if tags[(k+2)%4].Rule != scheme.RuleSmooth || tags[(k+3)%4].Rule != scheme.RuleSmooth {
			continue
		}
		s := l.edgeSharpness[fe[k]]
		if !scheme.IsSharp(s) {
			continue
		}
		if l.isRegularCreaseThrough(fv[k], fe[k], s) && l.isRegularCreaseThrough(fv[(k+1)%4], fe[k], s) {
			return true
		}
	}
	return false
}

// isRegularCreaseThrough reports whether the crease entering vertex v along
// edge e continues through the opposite edge of a valence-4 ring with the
// same sharpness while the two side edges stay smooth.
func (l *Level) isRegularCreaseThrough(v, e int, s float32) bool {
	ring := l.vertEdges[v]
	if len(ring) != 4 || !l.vertOrdered[v] || scheme.IsSharp(l.vertSharpness[v]) {
		return false
	}
	pos := -1
	for i, re := range ring {
		if re == e {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}
	opposite := ring[(pos+2)%4]
	if l.edgeSharpness[opposite] != s {
		return false
	}
	return scheme.IsSmooth(l.edgeSharpness[ring[(pos+1)%4]]) && scheme.IsSmooth(l.edgeSharpness[ring[(pos+3)%4]])
}

// NumFVarChannels returns the number of face-varying channels.
func (l *Level) NumFVarChannels() int { return len(l.fvar) }

// FVarChannel returns channel c, or nil when c is out of range.
func (l *Level) FVarChannel(c int) *FVarChannel {
	if c < 0 || c >= len(l.fvar) {
		return nil
	}
	return l.fvar[c]
}

// NumFVarValues returns the number of values in channel c, or 0 when c is
// out of range.
func (l *Level) NumFVarValues(c int) int {
	ch := l.FVarChannel(c)
	if ch == nil {
		return 0
	}
	return ch.numValues
}

// DoesFaceFVarTopologyMatch reports whether the face-varying topology of
// channel c around face f matches the vertex topology, i.e. no corner of f
// lies on a face-varying boundary.
func (l *Level) DoesFaceFVarTopologyMatch(f, c int) bool {
	ch := l.FVarChannel(c)
	if ch == nil || ch.vertMismatch == nil {
		return true
	}
	for _, v := range l.faceVerts[f] {
		if ch.vertMismatch[v] {
			return false
		}
	}
	return true
}

// VertexCompositeFVarTag returns the tag of vertex v combined with the
// face-varying tags of every value of channel c around it.
func (l *Level) VertexCompositeFVarTag(v, c int) VertexTag {
	ch := l.FVarChannel(c)
	if ch == nil || ch.vertComposite == nil {
		return l.vertTags[v]
	}
	return ch.vertComposite[v]
}

// String renders a one-line summary for logs and debugging.
func (l *Level) String() string {
	return fmt.Sprintf("level(depth=%d verts=%d edges=%d faces=%d faceVerts=%d maxValence=%d)",
		l.depth, l.numVertices, l.NumEdges(), l.NumFaces(), l.numFaceVertsTotal, l.maxValence)
}
