// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// select.go — marking the faces of one level for adaptive refinement.

package refiner

import (
	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// selectFeatureAdaptiveComponents marks in sel every face of the parent
// level that needs isolation under mask. sel must be freshly created.
//
// At depth 0 faces whose size differs from the regular face size are
// irregular: with a face-local scheme only the face itself is selected,
// otherwise every face sharing a vertex with it, so the irregularity is
// isolated along with its neighborhood.
func selectFeatureAdaptiveComponents(sel *topology.SparseSelector, mask *FeatureMask, t scheme.Type) {
	level := sel.Refinement().Parent()
	selectIrregularFaces := level.Depth() == 0
	if mask.IsEmpty() && !selectIrregularFaces {
		return
	}

	numChannels := 0
	if mask.Has(SelectFVarFeatures) {
		numChannels = level.NumFVarChannels()
	}
	regularFaceSize := scheme.RegularFaceSize(t)
	neighborhood := scheme.LocalNeighborhoodSize(t)

	for f := 0; f < level.NumFaces(); f++ {
		if level.IsFaceHole(f) {
			continue
		}

		if selectIrregularFaces {
			fv := level.FaceVertices(f)
			if len(fv) != regularFaceSize {
				if neighborhood == 0 {
					sel.SelectFace(f)
				} else {
					for _, v := range fv {
						for _, nf := range level.VertexFaces(v) {
							sel.SelectFace(nf)
						}
					}
				}
				continue
			}
		}

		selected := FaceHasFeatures(level, f, mask)
		for c := 0; !selected && c < numChannels; c++ {
			if !level.DoesFaceFVarTopologyMatch(f, c) {
				selected = FaceHasDistinctFaceVaryingFeatures(level, f, c, mask)
			}
		}
		if selected {
			sel.SelectFace(f)
		}
	}
}
