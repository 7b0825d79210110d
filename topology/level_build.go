// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// level_build.go — constructing a base level from face-vertex lists and
// completing the derived relations of any level.
//
// Contract:
//   • NewBaseLevel validates input and returns sentinel errors; it never panics.
//   • Input slices are deep-copied; callers may reuse them.
//   • Set* mutators apply to an unfinalized depth-0 level only.

package topology

import (
	"fmt"

	"github.com/katalvlaran/subdiv/scheme"
)

const methodNewBaseLevel = "NewBaseLevel"

// NewBaseLevel builds a depth-0 level with numVertices vertices and one face
// per entry of faceVertices. Edges are derived from consecutive corners.
//
// Errors:
//   - ErrInvalidTopology: numVertices < 1, no faces, or a face with < 3 corners.
//   - ErrVertexOutOfRange: a corner index outside [0, numVertices).
//   - ErrDegenerateFace: two consecutive corners are the same vertex.
//
// Complexity: O(V + Σ|face|) time and memory.
func NewBaseLevel(numVertices int, faceVertices [][]int) (*Level, error) {
	if numVertices < 1 {
		return nil, fmt.Errorf("%s: numVertices=%d: %w", methodNewBaseLevel, numVertices, ErrInvalidTopology)
	}
	if len(faceVertices) == 0 {
		return nil, fmt.Errorf("%s: no faces: %w", methodNewBaseLevel, ErrInvalidTopology)
	}

	faces := make([][]int, len(faceVertices))
	for f, fv := range faceVertices {
		if len(fv) < 3 {
			return nil, fmt.Errorf("%s: face %d has %d corners: %w", methodNewBaseLevel, f, len(fv), ErrInvalidTopology)
		}
		for i, v := range fv {
			if v < 0 || v >= numVertices {
				return nil, fmt.Errorf("%s: face %d corner %d = %d: %w", methodNewBaseLevel, f, i, v, ErrVertexOutOfRange)
			}
			if fv[(i+1)%len(fv)] == v {
				return nil, fmt.Errorf("%s: face %d repeats vertex %d: %w", methodNewBaseLevel, f, v, ErrDegenerateFace)
			}
		}
		faces[f] = append([]int(nil), fv...)
	}

	l := &Level{
		numVertices:  numVertices,
		faceVerts:    faces,
		fullTopology: true,
	}
	nonManifoldEdges := l.deriveEdges()

	l.buildIncidence()
	l.faceTags = make([]FaceTag, l.NumFaces())
	l.edgeTags = make([]EdgeTag, l.NumEdges())
	l.vertTags = make([]VertexTag, numVertices)
	l.edgeSharpness = make([]float32, l.NumEdges())
	l.vertSharpness = make([]float32, numVertices)

	for e, bad := range nonManifoldEdges {
		l.edgeTags[e].NonManifold = bad || len(l.edgeFaces[e]) > 2
		l.edgeTags[e].Boundary = len(l.edgeFaces[e]) == 1
	}
	for v := 0; v < numVertices; v++ {
		manifold := l.vertOrdered[v]
		for _, e := range l.vertEdges[v] {
			if l.edgeTags[e].NonManifold {
				manifold = false
			}
		}
		l.vertTags[v].NonManifold = !manifold
	}
	return l, nil
}

// deriveEdges creates one edge per distinct unordered corner pair and fills
// faceEdges. The returned slice flags edges used twice in the same direction,
// which indicates inconsistent winding.
func (l *Level) deriveEdges() []bool {
	type pair struct{ a, b int }
	index := make(map[pair]int)
	var sameDirection []bool

	l.faceEdges = make([][]int, len(l.faceVerts))
	l.edgeVerts = l.edgeVerts[:0]
	forwardUses := []int{}
	backwardUses := []int{}

	for f, fv := range l.faceVerts {
		n := len(fv)
		l.faceEdges[f] = make([]int, n)
		for i := 0; i < n; i++ {
			v0, v1 := fv[i], fv[(i+1)%n]
			key := pair{v0, v1}
			if v1 < v0 {
				key = pair{v1, v0}
			}
			e, ok := index[key]
			if !ok {
				e = len(l.edgeVerts)
				index[key] = e
				l.edgeVerts = append(l.edgeVerts, [2]int{v0, v1})
				forwardUses = append(forwardUses, 0)
				backwardUses = append(backwardUses, 0)
				sameDirection = append(sameDirection, false)
			}
			if l.edgeVerts[e][0] == v0 {
				forwardUses[e]++
			} else {
				backwardUses[e]++
			}
			if forwardUses[e] > 1 || backwardUses[e] > 1 {
				sameDirection[e] = true
			}
			l.faceEdges[f][i] = e
		}
	}
	return sameDirection
}

// buildIncidence derives edge-faces, vertex-faces and vertex-edges from
// face-vertices, face-edges and edge-vertices, orders vertex rings and
// refreshes the cached totals.
func (l *Level) buildIncidence() {
	nE := len(l.edgeVerts)

	l.edgeFaces = make([][]int, nE)
	l.vertFaces = make([][]int, l.numVertices)
	l.vertEdges = make([][]int, l.numVertices)
	l.numFaceVertsTotal = 0

	for f, fe := range l.faceEdges {
		for _, e := range fe {
			ef := l.edgeFaces[e]
			if len(ef) > 0 && ef[len(ef)-1] == f {
				continue
			}
			l.edgeFaces[e] = append(ef, f)
		}
	}
	for f, fv := range l.faceVerts {
		l.numFaceVertsTotal += len(fv)
		for _, v := range fv {
			vf := l.vertFaces[v]
			if len(vf) > 0 && vf[len(vf)-1] == f {
				continue
			}
			l.vertFaces[v] = append(vf, f)
		}
	}
	for e, ev := range l.edgeVerts {
		l.vertEdges[ev[0]] = append(l.vertEdges[ev[0]], e)
		if ev[1] != ev[0] {
			l.vertEdges[ev[1]] = append(l.vertEdges[ev[1]], e)
		}
	}

	l.vertOrdered = make([]bool, l.numVertices)
	l.maxValence = 0
	for v := 0; v < l.numVertices; v++ {
		l.vertOrdered[v] = l.orderVertexRing(v)
		if n := len(l.vertEdges[v]); n > l.maxValence {
			l.maxValence = n
		}
	}
}

// orderVertexRing reorders the faces and edges of vertex v so that walking
// the slices circles the vertex. Boundary rings start at the face whose
// trailing edge is a boundary edge. The rings are left untouched, and false
// is returned, when the neighborhood is not a single fan.
func (l *Level) orderVertexRing(v int) bool {
	faces := l.vertFaces[v]
	edges := l.vertEdges[v]
	if len(faces) == 0 {
		return false
	}

	leading := func(f int) int {
		i := l.faceCorner(f, v)
		return l.faceEdges[f][i]
	}
	trailing := func(f int) int {
		i := l.faceCorner(f, v)
		n := len(l.faceVerts[f])
		return l.faceEdges[f][(i+n-1)%n]
	}

	start := faces[0]
	boundary := len(edges) > len(faces)
	if boundary {
		start = -1
		for _, f := range faces {
			if len(l.edgeFaces[trailing(f)]) == 1 {
				start = f
				break
			}
		}
		if start < 0 {
			return false
		}
	}

	orderedFaces := make([]int, 0, len(faces))
	orderedEdges := make([]int, 0, len(edges))
	if boundary {
		orderedEdges = append(orderedEdges, trailing(start))
	}
	f := start
	for len(orderedFaces) < len(faces) {
		orderedFaces = append(orderedFaces, f)
		lead := leading(f)
		orderedEdges = append(orderedEdges, lead)

		ef := l.edgeFaces[lead]
		if len(ef) != 2 {
			break
		}
		next := ef[0]
		if next == f {
			next = ef[1]
		}
		if next == start || l.faceCorner(next, v) < 0 {
			break
		}
		f = next
	}

	if len(orderedFaces) != len(faces) || len(orderedEdges) != len(edges) {
		return false
	}
	seen := make(map[int]bool, len(orderedEdges))
	for _, e := range orderedEdges {
		if seen[e] {
			return false
		}
		seen[e] = true
	}
	copy(faces, orderedFaces)
	copy(edges, orderedEdges)
	return true
}

// checkBaseMutable guards the Set* mutators.
func (l *Level) checkBaseMutable(method string) error {
	if l.finalized || l.depth != 0 {
		return fmt.Errorf("%s: %w", method, ErrLevelFinalized)
	}
	return nil
}

// SetEdgeSharpness assigns sharpness s to edge e of an unfinalized base level.
func (l *Level) SetEdgeSharpness(e int, s float32) error {
	if err := l.checkBaseMutable("SetEdgeSharpness"); err != nil {
		return err
	}
	if e < 0 || e >= l.NumEdges() {
		return fmt.Errorf("SetEdgeSharpness: edge %d: %w", e, ErrComponentOutOfRange)
	}
	l.edgeSharpness[e] = clampSharpness(s)
	return nil
}

// SetVertexSharpness assigns sharpness s to vertex v of an unfinalized base level.
func (l *Level) SetVertexSharpness(v int, s float32) error {
	if err := l.checkBaseMutable("SetVertexSharpness"); err != nil {
		return err
	}
	if v < 0 || v >= l.numVertices {
		return fmt.Errorf("SetVertexSharpness: vertex %d: %w", v, ErrVertexOutOfRange)
	}
	l.vertSharpness[v] = clampSharpness(s)
	return nil
}

// SetFaceHole tags face f of an unfinalized base level as a hole.
func (l *Level) SetFaceHole(f int) error {
	if err := l.checkBaseMutable("SetFaceHole"); err != nil {
		return err
	}
	if f < 0 || f >= l.NumFaces() {
		return fmt.Errorf("SetFaceHole: face %d: %w", f, ErrComponentOutOfRange)
	}
	l.faceTags[f].Hole = true
	return nil
}

// AddFVarChannel attaches a face-varying channel with numValues values.
// faceValues must mirror the face-vertex lists: one value index per corner.
// It returns the new channel index.
func (l *Level) AddFVarChannel(interp scheme.FVarLinearInterpolation, numValues int, faceValues [][]int) (int, error) {
	if err := l.checkBaseMutable("AddFVarChannel"); err != nil {
		return -1, err
	}
	if numValues < 1 || len(faceValues) != l.NumFaces() {
		return -1, fmt.Errorf("AddFVarChannel: %d values for %d faces: %w", numValues, len(faceValues), ErrInvalidFVarChannel)
	}
	values := make([][]int, len(faceValues))
	for f, fv := range faceValues {
		if len(fv) != len(l.faceVerts[f]) {
			return -1, fmt.Errorf("AddFVarChannel: face %d has %d values, want %d: %w",
				f, len(fv), len(l.faceVerts[f]), ErrInvalidFVarChannel)
		}
		for _, val := range fv {
			if val < 0 || val >= numValues {
				return -1, fmt.Errorf("AddFVarChannel: face %d value %d: %w", f, val, ErrInvalidFVarChannel)
			}
		}
		values[f] = append([]int(nil), fv...)
	}
	l.fvar = append(l.fvar, &FVarChannel{interp: interp, numValues: numValues, faceValues: values})
	return len(l.fvar) - 1, nil
}

// clampSharpness keeps sharpness within [SharpnessSmooth, SharpnessInfinite].
func clampSharpness(s float32) float32 {
	if s < scheme.SharpnessSmooth {
		return scheme.SharpnessSmooth
	}
	if s > scheme.SharpnessInfinite {
		return scheme.SharpnessInfinite
	}
	return s
}
