// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// refinement.go — the Refinement between a parent and a child level.
//
// A Refinement owns the parent↔child component maps and fills the child
// level. Faces are split by a scheme-specific kernel (quad_split.go,
// tri_split.go); everything else (vertex allocation, tag propagation,
// sharpness decay, face-varying channels) is shared here.
//
// Contract:
//   • Refine runs once; a second call returns ErrRefinementApplied.
//   • The parent must carry full topology (ErrIncompleteParent).
//   • Sparse refinement splits selected faces and their one-ring; child
//     components not derived from a selected face are tagged Incomplete.

package topology

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/subdiv/scheme"
)

// RefinementOptions control a single Refine call.
type RefinementOptions struct {
	// Sparse refines only selected faces and their neighborhood.
	Sparse bool
	// MinimalTopology keeps only face-vertices, edge-vertices and tags in the child.
	MinimalTopology bool
	// FaceVertsFirst orders child vertices as face-points, edge-points,
	// vertex-points instead of vertex-points, face-points, edge-points.
	FaceVertsFirst bool
}

// ParentKind identifies the kind of parent component a child component
// originates from.
type ParentKind uint8

const (
	ParentFace ParentKind = iota
	ParentEdge
	ParentVertex
)

// String names the parent kind.
func (k ParentKind) String() string {
	switch k {
	case ParentFace:
		return "face"
	case ParentEdge:
		return "edge"
	case ParentVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// ParentRef locates the parent component of a child component.
type ParentRef struct {
	Kind  ParentKind
	Index int
}

// Refinement maps a parent level onto the child level it produces.
type Refinement struct {
	parent *Level
	child  *Level

	split   scheme.Split
	options scheme.Options
	applied bool
	sparse  bool

	selected *roaring.Bitmap // parent faces chosen by a SparseSelector
	refined  *roaring.Bitmap // parent faces actually split

	completeFaces *roaring.Bitmap
	completeEdges *roaring.Bitmap
	completeVerts *roaring.Bitmap

	faceChildFaces    [][]int
	faceChildVertex   []int
	edgeChildVertex   []int
	edgeChildEdges    [][2]int
	vertexChildVertex []int

	childVertexParent []ParentRef
	childEdgeParent   []ParentRef
	childFaceParent   []int

	// halfSharpness[e][i] is the sharpness of the child edge of e at end i.
	halfSharpness [][2]float32
}

// NewQuadRefinement prepares a refinement that splits every face into quads
// around a face-point. child must be an empty level owned by the caller.
func NewQuadRefinement(parent, child *Level, opts scheme.Options) *Refinement {
	return newRefinement(parent, child, scheme.SplitToQuads, opts)
}

// NewTriRefinement prepares a refinement that splits every triangle into four.
func NewTriRefinement(parent, child *Level, opts scheme.Options) *Refinement {
	return newRefinement(parent, child, scheme.SplitToTris, opts)
}

func newRefinement(parent, child *Level, split scheme.Split, opts scheme.Options) *Refinement {
	return &Refinement{
		parent:   parent,
		child:    child,
		split:    split,
		options:  opts,
		selected: roaring.New(),
	}
}

// Parent returns the parent level.
func (r *Refinement) Parent() *Level { return r.parent }

// Child returns the child level.
func (r *Refinement) Child() *Level { return r.child }

// SplitType returns the face split applied by the refinement.
func (r *Refinement) SplitType() scheme.Split { return r.split }

// IsApplied reports whether Refine has run.
func (r *Refinement) IsApplied() bool { return r.applied }

// IsSparse reports whether the refinement was applied sparsely.
func (r *Refinement) IsSparse() bool { return r.sparse }

// HasSelection reports whether any parent face is selected.
func (r *Refinement) HasSelection() bool { return !r.selected.IsEmpty() }

// NumRefinedFaces returns how many parent faces were split.
func (r *Refinement) NumRefinedFaces() int {
	if r.refined == nil {
		return 0
	}
	return int(r.refined.GetCardinality())
}

// FaceChildFaces returns the child faces of parent face f (empty when f was
// not split).
func (r *Refinement) FaceChildFaces(f int) []int { return r.faceChildFaces[f] }

// FaceChildVertex returns the face-point of parent face f, or -1.
func (r *Refinement) FaceChildVertex(f int) int { return r.faceChildVertex[f] }

// EdgeChildVertex returns the edge-point of parent edge e, or -1.
func (r *Refinement) EdgeChildVertex(e int) int { return r.edgeChildVertex[e] }

// EdgeChildEdges returns the two child edges of parent edge e, or {-1, -1}.
func (r *Refinement) EdgeChildEdges(e int) [2]int { return r.edgeChildEdges[e] }

// VertexChildVertex returns the vertex-point of parent vertex v, or -1.
func (r *Refinement) VertexChildVertex(v int) int { return r.vertexChildVertex[v] }

// ChildVertexParent returns the parent component of child vertex v.
func (r *Refinement) ChildVertexParent(v int) ParentRef { return r.childVertexParent[v] }

// ChildEdgeParent returns the parent component of child edge e: a parent edge
// for halves of split edges, a parent face for edges interior to a face.
func (r *Refinement) ChildEdgeParent(e int) ParentRef { return r.childEdgeParent[e] }

// ChildFaceParent returns the parent face of child face f.
func (r *Refinement) ChildFaceParent(f int) int { return r.childFaceParent[f] }

// Refine builds the child level.
//
// Complexity: O(parent size + child size) time and memory.
func (r *Refinement) Refine(opts RefinementOptions) error {
	const method = "Refine"
	if r.applied {
		return fmt.Errorf("%s: %w", method, ErrRefinementApplied)
	}
	if !r.parent.fullTopology {
		return fmt.Errorf("%s: %w", method, ErrIncompleteParent)
	}
	if r.split == scheme.SplitToTris {
		for f, fv := range r.parent.faceVerts {
			if len(fv) != 3 {
				return fmt.Errorf("%s: face %d has %d corners: %w", method, f, len(fv), ErrNonTriangularFace)
			}
		}
	}
	r.sparse = opts.Sparse

	r.markComponents()
	r.allocateVertices(opts.FaceVertsFirst)

	c := r.child
	c.depth = r.parent.depth + 1
	c.schemeType = r.parent.schemeType
	c.schemeOptions = r.parent.schemeOptions
	c.fullTopology = true

	r.faceChildFaces = make([][]int, r.parent.NumFaces())
	r.childFaceParent = r.childFaceParent[:0]
	c.faceVerts, c.faceEdges = nil, nil

	r.allocateEdgeChildren()
	switch r.split {
	case scheme.SplitToQuads:
		r.splitQuads()
	default:
		r.splitTris()
	}

	r.computeHalfSharpness()
	r.propagateEdgeTags()
	r.propagateVertexTags()
	r.propagateFaceTags()

	if opts.MinimalTopology {
		c.faceEdges = nil
		c.fullTopology = false
		c.numFaceVertsTotal = 0
		for _, fv := range c.faceVerts {
			c.numFaceVertsTotal += len(fv)
		}
		valence := make([]int, c.numVertices)
		c.maxValence = 0
		for _, ev := range c.edgeVerts {
			valence[ev[0]]++
			valence[ev[1]]++
		}
		for _, n := range valence {
			if n > c.maxValence {
				c.maxValence = n
			}
		}
	} else {
		c.buildIncidence()
	}

	r.refineFVarChannels()
	c.finalized = true
	r.applied = true
	return nil
}

// markComponents decides which parent faces are split and which parent
// components yield complete children.
func (r *Refinement) markComponents() {
	p := r.parent
	r.refined = roaring.New()
	if !r.sparse {
		r.refined.AddRange(0, uint64(p.NumFaces()))
		r.completeFaces = r.refined
		r.completeEdges = roaring.New()
		r.completeEdges.AddRange(0, uint64(p.NumEdges()))
		r.completeVerts = roaring.New()
		r.completeVerts.AddRange(0, uint64(p.numVertices))
		return
	}

	r.completeFaces = r.selected.Clone()
	r.completeEdges = roaring.New()
	r.completeVerts = roaring.New()
	it := r.selected.Iterator()
	for it.HasNext() {
		f := int(it.Next())
		for _, e := range p.faceEdges[f] {
			r.completeEdges.Add(uint32(e))
		}
		for _, v := range p.faceVerts[f] {
			r.completeVerts.Add(uint32(v))
			for _, nf := range p.vertFaces[v] {
				r.refined.Add(uint32(nf))
			}
		}
	}
}

// allocateVertices assigns child vertex indices to the face-, edge- and
// vertex-points of refined components.
func (r *Refinement) allocateVertices(faceVertsFirst bool) {
	p := r.parent
	r.faceChildVertex = fill(make([]int, p.NumFaces()), -1)
	r.edgeChildVertex = fill(make([]int, p.NumEdges()), -1)
	r.vertexChildVertex = fill(make([]int, p.numVertices), -1)

	refinedEdges := roaring.New()
	refinedVerts := roaring.New()
	if r.sparse {
		it := r.refined.Iterator()
		for it.HasNext() {
			f := int(it.Next())
			for _, e := range p.faceEdges[f] {
				refinedEdges.Add(uint32(e))
			}
			for _, v := range p.faceVerts[f] {
				refinedVerts.Add(uint32(v))
			}
		}
	} else {
		refinedEdges.AddRange(0, uint64(p.NumEdges()))
		refinedVerts.AddRange(0, uint64(p.numVertices))
	}

	r.childVertexParent = r.childVertexParent[:0]
	addFaces := func() {
		if r.split != scheme.SplitToQuads {
			return
		}
		it := r.refined.Iterator()
		for it.HasNext() {
			f := int(it.Next())
			r.faceChildVertex[f] = len(r.childVertexParent)
			r.childVertexParent = append(r.childVertexParent, ParentRef{ParentFace, f})
		}
	}
	addEdges := func() {
		it := refinedEdges.Iterator()
		for it.HasNext() {
			e := int(it.Next())
			r.edgeChildVertex[e] = len(r.childVertexParent)
			r.childVertexParent = append(r.childVertexParent, ParentRef{ParentEdge, e})
		}
	}
	addVerts := func() {
		it := refinedVerts.Iterator()
		for it.HasNext() {
			v := int(it.Next())
			r.vertexChildVertex[v] = len(r.childVertexParent)
			r.childVertexParent = append(r.childVertexParent, ParentRef{ParentVertex, v})
		}
	}

	if faceVertsFirst {
		addFaces()
		addEdges()
		addVerts()
	} else {
		addVerts()
		addFaces()
		addEdges()
	}
	r.child.numVertices = len(r.childVertexParent)
}

// allocateEdgeChildren creates the two halves of every split parent edge.
// Interior child edges are appended by the split kernels.
func (r *Refinement) allocateEdgeChildren() {
	p := r.parent
	c := r.child
	r.edgeChildEdges = make([][2]int, p.NumEdges())
	c.edgeVerts = c.edgeVerts[:0]
	r.childEdgeParent = r.childEdgeParent[:0]

	for e := range r.edgeChildEdges {
		ec := r.edgeChildVertex[e]
		if ec < 0 {
			r.edgeChildEdges[e] = [2]int{-1, -1}
			continue
		}
		ev := p.edgeVerts[e]
		r.edgeChildEdges[e] = [2]int{len(c.edgeVerts), len(c.edgeVerts) + 1}
		c.edgeVerts = append(c.edgeVerts,
			[2]int{r.vertexChildVertex[ev[0]], ec},
			[2]int{ec, r.vertexChildVertex[ev[1]]})
		r.childEdgeParent = append(r.childEdgeParent, ParentRef{ParentEdge, e}, ParentRef{ParentEdge, e})
	}
}

// addInteriorEdge appends a child edge interior to parent face f.
func (r *Refinement) addInteriorEdge(f, v0, v1 int) int {
	c := r.child
	c.edgeVerts = append(c.edgeVerts, [2]int{v0, v1})
	r.childEdgeParent = append(r.childEdgeParent, ParentRef{ParentFace, f})
	return len(c.edgeVerts) - 1
}

// addChildFace appends a child face of parent face f.
func (r *Refinement) addChildFace(f int, verts, edges []int) {
	c := r.child
	idx := len(c.faceVerts)
	c.faceVerts = append(c.faceVerts, verts)
	c.faceEdges = append(c.faceEdges, edges)
	r.childFaceParent = append(r.childFaceParent, f)
	r.faceChildFaces[f] = append(r.faceChildFaces[f], idx)
}

// halfAt returns the child edge of parent edge e incident to parent vertex v.
func (r *Refinement) halfAt(e, v int) int {
	if r.parent.edgeVerts[e][0] == v {
		return r.edgeChildEdges[e][0]
	}
	return r.edgeChildEdges[e][1]
}

// computeHalfSharpness decays every parent edge sharpness at both ends.
func (r *Refinement) computeHalfSharpness() {
	p := r.parent
	r.halfSharpness = make([][2]float32, p.NumEdges())
	others := make([]float32, 0, p.maxValence)
	for e, ev := range p.edgeVerts {
		s := p.edgeSharpness[e]
		for end := 0; end < 2; end++ {
			others = others[:0]
			if r.options.CreasingMethod == scheme.CreasingChaikin {
				for _, oe := range p.vertEdges[ev[end]] {
					if oe != e {
						others = append(others, p.edgeSharpness[oe])
					}
				}
			}
			r.halfSharpness[e][end] = scheme.SubdivideEdgeSharpnessAtVertex(s, others, r.options.CreasingMethod)
		}
	}
}

// propagateEdgeTags sets child edge tags and sharpness.
func (r *Refinement) propagateEdgeTags() {
	p := r.parent
	c := r.child
	c.edgeTags = make([]EdgeTag, len(c.edgeVerts))
	c.edgeSharpness = make([]float32, len(c.edgeVerts))

	for ce, ref := range r.childEdgeParent {
		if ref.Kind != ParentEdge {
			continue
		}
		e := ref.Index
		end := 0
		if r.edgeChildEdges[e][1] == ce {
			end = 1
		}
		s := r.halfSharpness[e][end]
		pt := p.edgeTags[e]
		c.edgeSharpness[ce] = s
		c.edgeTags[ce] = EdgeTag{
			NonManifold: pt.NonManifold,
			Boundary:    pt.Boundary,
			InfSharp:    scheme.IsInfinite(s),
			SemiSharp:   scheme.IsSemiSharp(s),
		}
	}
}

// propagateVertexTags derives child vertex tags from their parent components.
func (r *Refinement) propagateVertexTags() {
	p := r.parent
	c := r.child
	c.vertTags = make([]VertexTag, c.numVertices)
	c.vertSharpness = make([]float32, c.numVertices)
	regularFaceSize := scheme.RegularFaceSize(p.schemeType)

	for cv, ref := range r.childVertexParent {
		var tag VertexTag
		switch ref.Kind {
		case ParentFace:
			tag.Rule = scheme.RuleSmooth
			tag.Xordinary = len(p.faceVerts[ref.Index]) != regularFaceSize
			tag.Incomplete = !r.completeFaces.Contains(uint32(ref.Index))

		case ParentEdge:
			e := ref.Index
			pt := p.edgeTags[e]
			halves := r.halfSharpness[e]
			sharpHalves := 0
			for _, s := range halves {
				if scheme.IsSharp(s) {
					sharpHalves++
				}
			}
			tag.NonManifold = pt.NonManifold
			tag.Boundary = pt.Boundary
			tag.Xordinary = pt.NonManifold
			tag.SemiSharpEdges = scheme.IsSemiSharp(halves[0]) || scheme.IsSemiSharp(halves[1])
			tag.InfSharpEdges = pt.InfSharp
			tag.InfSharpCrease = pt.InfSharp
			tag.InfIrregular = pt.InfSharp && pt.NonManifold
			tag.Rule = scheme.DetermineVertexRule(scheme.SharpnessSmooth, sharpHalves)
			tag.Incomplete = !r.completeEdges.Contains(uint32(e))

		case ParentVertex:
			v := ref.Index
			tag = p.vertTags[v]
			vs := scheme.SubdivideUniformSharpness(p.vertSharpness[v])
			c.vertSharpness[cv] = vs
			if tag.SemiSharp || tag.SemiSharpEdges {
				r.reclassifyVertex(&tag, v, vs)
			}
			tag.Incomplete = !r.completeVerts.Contains(uint32(v))
		}
		c.vertTags[cv] = tag
	}
}

// reclassifyVertex updates the semi-sharp dependent fields of a vertex-point
// after sharpness decay.
func (r *Refinement) reclassifyVertex(tag *VertexTag, v int, vs float32) {
	p := r.parent
	var inf, semi int
	for _, e := range p.vertEdges[v] {
		end := 0
		if p.edgeVerts[e][0] != v {
			end = 1
		}
		s := r.halfSharpness[e][end]
		switch {
		case scheme.IsInfinite(s):
			inf++
		case scheme.IsSemiSharp(s):
			semi++
		}
	}
	tag.SemiSharp = scheme.IsSemiSharp(vs)
	tag.InfSharp = scheme.IsInfinite(vs)
	tag.SemiSharpEdges = semi > 0
	tag.Rule = scheme.DetermineVertexRule(vs, inf+semi)
}

// propagateFaceTags copies the hole tag of each parent face to its children.
func (r *Refinement) propagateFaceTags() {
	p := r.parent
	c := r.child
	c.faceTags = make([]FaceTag, len(c.faceVerts))
	for cf, f := range r.childFaceParent {
		c.faceTags[cf] = p.faceTags[f]
	}
}

// refineFVarChannels carries every face-varying channel to the child. Child
// values are keyed by the child vertex and the parent values they derive
// from, so seams persist while continuous regions stay shared.
func (r *Refinement) refineFVarChannels() {
	p := r.parent
	c := r.child
	c.fvar = nil

	type key struct{ v, a, b int }
	for _, pch := range p.fvar {
		index := make(map[key]int)
		values := make([][]int, len(c.faceVerts))
		for cf, fv := range c.faceVerts {
			pf := r.childFaceParent[cf]
			values[cf] = make([]int, len(fv))
			for i, cv := range fv {
				k := key{v: cv, a: -1, b: -1}
				ref := r.childVertexParent[cv]
				switch ref.Kind {
				case ParentVertex:
					k.a = pch.faceValues[pf][p.faceCorner(pf, ref.Index)]
				case ParentEdge:
					ev := p.edgeVerts[ref.Index]
					k.a = pch.faceValues[pf][p.faceCorner(pf, ev[0])]
					k.b = pch.faceValues[pf][p.faceCorner(pf, ev[1])]
				}
				val, ok := index[k]
				if !ok {
					val = len(index)
					index[k] = val
				}
				values[cf][i] = val
			}
		}
		ch := &FVarChannel{interp: pch.interp, numValues: len(index), faceValues: values}
		ch.computeTags(c)
		c.fvar = append(c.fvar, ch)
	}
}

func fill(s []int, v int) []int {
	for i := range s {
		s[i] = v
	}
	return s
}
