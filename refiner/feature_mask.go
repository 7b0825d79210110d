// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// feature_mask.go — the set of topological features selected for isolation
// during one level of adaptive refinement.

package refiner

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/subdiv/scheme"
)

// Feature is one selectable feature class.
type Feature uint

const (
	SelectXOrdinaryInterior Feature = iota
	SelectXOrdinaryBoundary
	SelectSemiSharpSingle
	SelectSemiSharpNonSingle
	SelectInfSharpRegularCrease
	SelectInfSharpRegularCorner
	SelectInfSharpIrregularDart
	SelectInfSharpIrregularCrease
	SelectInfSharpIrregularCorner
	SelectNonManifold
	SelectFVarFeatures

	numFeatures
)

var featureNames = [numFeatures]string{
	"xordinary-interior",
	"xordinary-boundary",
	"semi-sharp-single",
	"semi-sharp-non-single",
	"inf-sharp-regular-crease",
	"inf-sharp-regular-corner",
	"inf-sharp-irregular-dart",
	"inf-sharp-irregular-crease",
	"inf-sharp-irregular-corner",
	"non-manifold",
	"fvar-features",
}

// String names the feature.
func (f Feature) String() string {
	if f >= numFeatures {
		return "unknown"
	}
	return featureNames[f]
}

// FeatureMask is a set of Features. The zero value is an empty mask.
type FeatureMask struct {
	bits *bitset.BitSet
}

// NewFeatureMask returns a mask initialized from opts for scheme t.
func NewFeatureMask(opts AdaptiveOptions, t scheme.Type) *FeatureMask {
	m := &FeatureMask{}
	m.InitializeFeatures(opts, t)
	return m
}

// InitializeFeatures replaces the contents of m with the features implied
// by opts. Single-crease patches are only honored for quad schemes.
func (m *FeatureMask) InitializeFeatures(opts AdaptiveOptions, t scheme.Type) {
	useSingleCreasePatch := opts.UseSingleCreasePatch && scheme.RegularFaceSize(t) == 4

	m.Clear()
	m.Set(SelectXOrdinaryInterior, true)
	m.Set(SelectXOrdinaryBoundary, true)

	m.Set(SelectSemiSharpSingle, !useSingleCreasePatch)
	m.Set(SelectSemiSharpNonSingle, true)

	m.Set(SelectInfSharpRegularCrease, !(opts.UseInfSharpPatch || useSingleCreasePatch))
	m.Set(SelectInfSharpRegularCorner, !opts.UseInfSharpPatch)
	m.Set(SelectInfSharpIrregularDart, true)
	m.Set(SelectInfSharpIrregularCrease, true)
	m.Set(SelectInfSharpIrregularCorner, true)

	m.Set(SelectNonManifold, true)
	m.Set(SelectFVarFeatures, opts.ConsiderFVarChannels)
}

// ReduceFeatures narrows m to the features still worth isolating beyond the
// secondary level. It only ever clears bits.
func (m *FeatureMask) ReduceFeatures(opts AdaptiveOptions) {
	m.Set(SelectXOrdinaryInterior, false)
	m.Set(SelectXOrdinaryBoundary, false)

	// irregular corners stay selected
	if opts.UseInfSharpPatch {
		m.Set(SelectInfSharpRegularCrease, false)
		m.Set(SelectInfSharpRegularCorner, false)
		m.Set(SelectInfSharpIrregularDart, false)
		m.Set(SelectInfSharpIrregularCrease, false)
	}
}

// Has reports whether f is selected.
func (m *FeatureMask) Has(f Feature) bool {
	return m != nil && m.bits != nil && m.bits.Test(uint(f))
}

// Set turns f on or off.
func (m *FeatureMask) Set(f Feature, on bool) {
	if m.bits == nil {
		m.bits = bitset.New(uint(numFeatures))
	}
	m.bits.SetTo(uint(f), on)
}

// Clear turns every feature off.
func (m *FeatureMask) Clear() {
	if m.bits != nil {
		m.bits.ClearAll()
	}
}

// IsEmpty reports whether no feature is selected.
func (m *FeatureMask) IsEmpty() bool {
	return m == nil || m.bits == nil || m.bits.None()
}

// Count returns the number of selected features.
func (m *FeatureMask) Count() int {
	if m == nil || m.bits == nil {
		return 0
	}
	return int(m.bits.Count())
}

// Clone returns an independent copy of m.
func (m *FeatureMask) Clone() *FeatureMask {
	if m == nil || m.bits == nil {
		return &FeatureMask{}
	}
	return &FeatureMask{bits: m.bits.Clone()}
}

// Equal reports whether m and o select the same features.
func (m *FeatureMask) Equal(o *FeatureMask) bool {
	for f := Feature(0); f < numFeatures; f++ {
		if m.Has(f) != o.Has(f) {
			return false
		}
	}
	return true
}

// String lists the selected features, e.g. "{non-manifold,fvar-features}".
func (m *FeatureMask) String() string {
	var names []string
	for f := Feature(0); f < numFeatures; f++ {
		if m.Has(f) {
			names = append(names, f.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
