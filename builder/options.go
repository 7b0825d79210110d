// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/subdiv/scheme"
)

// BuilderOption customizes a build by mutating a builderConfig before the
// first constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSharpnessFn overrides the generator used for tags created without an
// explicit sharpness. Panics on nil.
func WithSharpnessFn(fn SharpnessFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSharpnessFn(nil)")
	}
	return func(c *builderConfig) {
		c.sharpnessFn = fn
	}
}

// WithDefaultSharpness sets the sharpness used by Crease, Corner and
// RandomCreases when no positive sharpness is passed.
// Panics unless 0 < s ≤ scheme.SharpnessInfinite.
func WithDefaultSharpness(s float32) BuilderOption {
	if !(s > 0 && s <= scheme.SharpnessInfinite) {
		panic("builder: WithDefaultSharpness(s out of (0, SharpnessInfinite])")
	}
	return WithSharpnessFn(ConstantSharpnessFn(s))
}

// WithUniformSharpness draws tag sharpness uniformly from [min, max].
func WithUniformSharpness(min, max float32) BuilderOption {
	return WithSharpnessFn(UniformSharpnessFn(min, max))
}
