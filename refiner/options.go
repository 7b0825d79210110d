// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// options.go — refinement options and functional options for TopologyRefiner.

package refiner

import "go.uber.org/zap"

// MaxRefinementLevel bounds both uniform refinement and adaptive isolation.
const MaxRefinementLevel = 15

// UniformOptions control RefineUniform.
type UniformOptions struct {
	// RefinementLevel is the number of levels added; every face is split at each.
	RefinementLevel int
	// OrderVerticesFromFacesFirst orders child vertices face-points first.
	OrderVerticesFromFacesFirst bool
	// FullTopologyInLastLevel keeps full topology in the deepest level, which
	// otherwise only carries face-vertices and counts.
	FullTopologyInLastLevel bool
}

// DefaultUniformOptions returns options refining uniformly to level.
func DefaultUniformOptions(level int) UniformOptions {
	return UniformOptions{RefinementLevel: level}
}

// AdaptiveOptions control RefineAdaptive.
type AdaptiveOptions struct {
	// IsolationLevel is the deepest level features are isolated to.
	IsolationLevel int
	// SecondaryLevel limits isolation of extraordinary vertices; beyond it
	// a reduced feature set applies. Zero or negative means
	// MaxRefinementLevel, so a literal AdaptiveOptions{IsolationLevel: n}
	// still isolates extraordinary vertices to depth n.
	SecondaryLevel int
	// UseSingleCreasePatch stops isolating regular faces with one semi-sharp crease.
	UseSingleCreasePatch bool
	// UseInfSharpPatch stops isolating regular infinitely sharp features.
	UseInfSharpPatch bool
	// ConsiderFVarChannels also isolates features of non-linear face-varying channels.
	ConsiderFVarChannels bool
	// OrderVerticesFromFacesFirst orders child vertices face-points first.
	OrderVerticesFromFacesFirst bool
}

// DefaultAdaptiveOptions returns options isolating to level with the
// secondary level at MaxRefinementLevel and every optimization off.
func DefaultAdaptiveOptions(level int) AdaptiveOptions {
	return AdaptiveOptions{
		IsolationLevel: level,
		SecondaryLevel: MaxRefinementLevel,
	}
}

// secondaryLevel resolves an unset SecondaryLevel to MaxRefinementLevel.
func (o AdaptiveOptions) secondaryLevel() int {
	if o.SecondaryLevel <= 0 {
		return MaxRefinementLevel
	}
	return o.SecondaryLevel
}

// Option customizes a TopologyRefiner.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	reporter ErrorReporter
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes refiner events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("refiner: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithErrorReporter installs fn as the error-reporting channel. Panics on nil.
func WithErrorReporter(fn ErrorReporter) Option {
	if fn == nil {
		panic("refiner: WithErrorReporter(nil)")
	}
	return func(c *config) { c.reporter = fn }
}
