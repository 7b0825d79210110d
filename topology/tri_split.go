// SPDX-License-Identifier: MIT
// Package: subdiv/topology
//
// tri_split.go — the face split of triangle-based schemes (Loop).

package topology

// splitTris splits each refined triangle into three corner triangles and one
// center triangle joining its edge-points.
func (r *Refinement) splitTris() {
	p := r.parent
	it := r.refined.Iterator()
	for it.HasNext() {
		f := int(it.Next())
		fv := p.faceVerts[f]
		fe := p.faceEdges[f]

		var vc, ec [3]int
		for i := 0; i < 3; i++ {
			vc[i] = r.vertexChildVertex[fv[i]]
			ec[i] = r.edgeChildVertex[fe[i]]
		}

		// ie[i] joins the edge-points on either side of corner i+1.
		ie := [3]int{
			r.addInteriorEdge(f, ec[2], ec[0]),
			r.addInteriorEdge(f, ec[0], ec[1]),
			r.addInteriorEdge(f, ec[1], ec[2]),
		}

		for i := 0; i < 3; i++ {
			prev := (i + 2) % 3
			r.addChildFace(f,
				[]int{vc[i], ec[i], ec[prev]},
				[]int{r.halfAt(fe[i], fv[i]), ie[i], r.halfAt(fe[prev], fv[i])})
		}
		r.addChildFace(f, []int{ec[0], ec[1], ec[2]}, []int{ie[1], ie[2], ie[0]})
	}
}
