// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// quad_split.go — the face split of quad-based schemes (Catmark, Bilinear).

package topology

// splitQuads splits each refined N-sided face into N quads. Child quad i of
// face f is [vertex-point(i), edge-point(i), face-point, edge-point(i-1)],
// so every child quad keeps the winding of its parent.
func (r *Refinement) splitQuads() {
	p := r.parent
	it := r.refined.Iterator()
	for it.HasNext() {
		f := int(it.Next())
		fv := p.faceVerts[f]
		fe := p.faceEdges[f]
		n := len(fv)
		fc := r.faceChildVertex[f]

		interior := make([]int, n)
		for i, e := range fe {
			interior[i] = r.addInteriorEdge(f, r.edgeChildVertex[e], fc)
		}
		for i := 0; i < n; i++ {
			prev := (i + n - 1) % n
			verts := []int{
				r.vertexChildVertex[fv[i]],
				r.edgeChildVertex[fe[i]],
				fc,
				r.edgeChildVertex[fe[prev]],
			}
			edges := []int{
				r.halfAt(fe[i], fv[i]),
				interior[i],
				interior[prev],
				r.halfAt(fe[prev], fv[i]),
			}
			r.addChildFace(f, verts, edges)
		}
	}
}
