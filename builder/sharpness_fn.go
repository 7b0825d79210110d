// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// sharpness_fn.go — sharpness distributions for crease and corner tags.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/subdiv/scheme"
)

// DefaultTagSharpness is the sharpness of tags created without an explicit
// value when no SharpnessFn is configured.
const DefaultTagSharpness = scheme.SharpnessInfinite

// SharpnessFn produces a tag sharpness given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return a value in
// (0, scheme.SharpnessInfinite].
type SharpnessFn func(rng *rand.Rand) float32

// DefaultSharpnessFn always returns DefaultTagSharpness.
func DefaultSharpnessFn(_ *rand.Rand) float32 {
	return DefaultTagSharpness
}

// ConstantSharpnessFn returns a SharpnessFn that always yields s.
// Panics unless 0 < s ≤ scheme.SharpnessInfinite.
func ConstantSharpnessFn(s float32) SharpnessFn {
	if !(s > 0 && s <= scheme.SharpnessInfinite) {
		panic(fmt.Sprintf("ConstantSharpnessFn: require 0 < s ≤ %g, got %g", scheme.SharpnessInfinite, s))
	}
	return func(_ *rand.Rand) float32 {
		return s
	}
}

// UniformSharpnessFn returns a SharpnessFn sampling uniformly in [min, max).
// Panics unless 0 < min ≤ max ≤ scheme.SharpnessInfinite.
// If rng is nil, yields min so that unseeded builds stay deterministic.
func UniformSharpnessFn(min, max float32) SharpnessFn {
	if !(min > 0 && min <= max && max <= scheme.SharpnessInfinite) {
		panic(fmt.Sprintf("UniformSharpnessFn: require 0 < min ≤ max ≤ %g, got min=%g, max=%g",
			scheme.SharpnessInfinite, min, max))
	}
	return func(rng *rand.Rand) float32 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float32()*(max-min)
	}
}
