// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// classify.go — deciding whether a face carries features worth isolating.
//
// The classifiers read only the tags of a face's corners, combined into one
// composite tag. They are pure functions of (level, face, mask) so they can
// be shared by the selector driver, tests and any caller that wants to
// inspect a level without refining it.

package refiner

import (
	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// FaceHasFeatures reports whether face f of level carries a feature
// selected by mask in the vertex topology.
//
// Incomplete faces (on the edge of a sparse level) are never selected.
// Semi-sharp features take precedence over infinitely sharp ones.
func FaceHasFeatures(level *topology.Level, f int, mask *FeatureMask) bool {
	if mask.IsEmpty() {
		return false
	}

	tags := level.FaceVertexTags(f)
	comp := topology.CombineVertexTags(tags)
	if comp.Incomplete {
		return false
	}

	if comp.NonManifold && mask.Has(SelectNonManifold) {
		return true
	}

	// Smooth extraordinary vertices; boundaries are handled as inf-sharp.
	if comp.Xordinary && mask.Has(SelectXOrdinaryInterior) {
		if comp.Rule == scheme.RuleSmooth {
			return true
		}
		// The composite rule of a face next to a first-level extraordinary
		// vertex may be mixed; look at the corners themselves.
		if level.Depth() < 2 {
			for _, t := range tags {
				if t.Xordinary && t.Rule == scheme.RuleSmooth {
					return true
				}
			}
		}
	}

	if comp.Rule == scheme.RuleSmooth {
		return false
	}
	// No smooth corner at all: too many sharp features to leave unisolated.
	if comp.Rule&scheme.RuleSmooth == 0 {
		return true
	}

	if comp.SemiSharp || comp.SemiSharpEdges {
		if mask.Has(SelectSemiSharpSingle) && mask.Has(SelectSemiSharpNonSingle) {
			return true
		}
		if level.IsSingleCreasePatch(f) {
			return mask.Has(SelectSemiSharpSingle)
		}
		return mask.Has(SelectSemiSharpNonSingle)
	}

	if comp.InfSharp || comp.InfSharpEdges {
		return infSharpFaceHasFeatures(comp, mask)
	}
	return false
}

// FaceHasDistinctFaceVaryingFeatures reports whether face f carries a
// feature of face-varying channel c selected by mask. It is meant for faces
// whose face-varying topology differs from the vertex topology and that
// FaceHasFeatures already rejected; such faces lie on a face-varying
// boundary, so only infinitely sharp features remain to be examined.
//
// The composite face-varying tags of the corners include every value around
// each corner, so neighboring faces stay within one level of each other.
//
// Incomplete faces are rejected here as well, which the vertex-only
// formulation of this test leaves to the caller.
func FaceHasDistinctFaceVaryingFeatures(level *topology.Level, f, c int, mask *FeatureMask) bool {
	if mask.IsEmpty() {
		return false
	}

	fv := level.FaceVertices(f)
	tags := make([]topology.VertexTag, len(fv))
	for i, v := range fv {
		tags[i] = level.VertexCompositeFVarTag(v, c)
	}
	comp := topology.CombineVertexTags(tags)
	if comp.Incomplete {
		return false
	}

	if comp.NonManifold && mask.Has(SelectNonManifold) {
		return true
	}
	if comp.Xordinary && mask.Has(SelectXOrdinaryInterior) {
		return true
	}
	if comp.Rule&scheme.RuleSmooth == 0 {
		return true
	}
	return infSharpFaceHasFeatures(comp, mask)
}

// infSharpFaceHasFeatures classifies the infinitely sharp features of a
// composite tag. It is shared by the vertex and face-varying classifiers.
//
// A composite may mix corners, but at least one corner is smooth and
// interior, which limits the combinations on the others.
func infSharpFaceHasFeatures(comp topology.VertexTag, mask *FeatureMask) bool {
	if comp.InfIrregular {
		switch {
		case comp.Rule&scheme.RuleCorner != 0:
			return mask.Has(SelectInfSharpIrregularCorner)
		case comp.Rule&scheme.RuleCrease != 0:
			if comp.Boundary {
				return mask.Has(SelectXOrdinaryBoundary)
			}
			return mask.Has(SelectInfSharpIrregularCrease)
		case comp.Rule&scheme.RuleDart != 0:
			return mask.Has(SelectInfSharpIrregularDart)
		}
		return false
	}

	if comp.Boundary {
		// Regular boundary features are never selected, except a boundary
		// crease turned into a corner by an interior sharp edge.
		if comp.Rule&scheme.RuleCorner != 0 {
			return !comp.Corner && mask.Has(SelectInfSharpRegularCorner)
		}
		return false
	}

	if comp.Rule&scheme.RuleCorner != 0 {
		return mask.Has(SelectInfSharpRegularCorner)
	}
	return mask.Has(SelectInfSharpRegularCrease)
}
