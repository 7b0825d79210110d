// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil                      (pure/deterministic unless seeded)
//   • sharpnessFn = DefaultSharpnessFn       (infinitely sharp)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Sharpness generator for tags created without an explicit sharpness.
	sharpnessFn SharpnessFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		sharpnessFn: DefaultSharpnessFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// sharpness resolves the sharpness of a tag: s when positive, otherwise a
// draw from the configured generator.
func (c builderConfig) sharpness(s float32) float32 {
	if s > 0 {
		return s
	}
	return c.sharpnessFn(c.rng)
}
