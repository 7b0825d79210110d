// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// refiner.go — TopologyRefiner: the level and refinement stacks and the
// uniform and adaptive refinement loops that grow them.
//
// Lifecycle:
//   New → SetBaseLevel → RefineUniform | RefineAdaptive → Unrefine → ...
//
// Contract:
//   • The level stack always holds the base level at index 0.
//   • len(refinements) == len(levels) - 1.
//   • Refining twice without Unrefine is rejected with ErrAlreadyRefined.
//   • Rejected calls leave every stack and counter unchanged.

package refiner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

const (
	methodSetBaseLevel   = "SetBaseLevel"
	methodRefineUniform  = "RefineUniform"
	methodRefineAdaptive = "RefineAdaptive"
)

// TopologyRefiner owns a hierarchy of topology levels refined from one base
// level. It is not safe for concurrent use.
type TopologyRefiner struct {
	schemeType    scheme.Type
	schemeOptions scheme.Options

	isUniform bool
	hasHoles  bool
	maxLevel  int

	uniformOptions  UniformOptions
	adaptiveOptions AdaptiveOptions

	levels      []*topology.Level
	refinements []*topology.Refinement
	views       []levelEntry

	inv Inventory

	log    *zap.Logger
	report ErrorReporter
}

// New returns a refiner for scheme t holding an empty base level.
func New(t scheme.Type, opts scheme.Options, options ...Option) *TopologyRefiner {
	cfg := newConfig(options...)
	r := &TopologyRefiner{
		schemeType:    t,
		schemeOptions: opts,
		isUniform:     true,
		levels:        []*topology.Level{topology.NewLevel()},
		log:           cfg.logger.With(zap.String("scheme", t.String())),
		report:        cfg.reporter,
	}
	r.initializeInventory()
	r.assembleLevels()
	return r
}

// NewFromDescriptor returns a refiner whose base level is built from desc.
func NewFromDescriptor(desc *TopologyDescriptor, t scheme.Type, opts scheme.Options, options ...Option) (*TopologyRefiner, error) {
	r := New(t, opts, options...)
	base, err := desc.BuildBaseLevel(t, opts)
	if err != nil {
		return nil, r.fail(FatalError, "NewFromDescriptor", err)
	}
	if err := r.SetBaseLevel(base); err != nil {
		return nil, err
	}
	return r, nil
}

// SetBaseLevel installs base as level 0. An unfinalized level is tagged for
// the refiner's scheme first.
func (r *TopologyRefiner) SetBaseLevel(base *topology.Level) error {
	if len(r.refinements) > 0 {
		return r.fail(RuntimeError, methodSetBaseLevel, ErrAlreadyRefined)
	}
	if base == nil || base.NumVertices() == 0 {
		return r.fail(RuntimeError, methodSetBaseLevel, ErrBaseLevelUninitialized)
	}
	if !base.IsFinalized() {
		if err := base.Finalize(r.schemeType, r.schemeOptions); err != nil {
			return r.fail(RuntimeError, methodSetBaseLevel, err)
		}
	}
	r.levels[0] = base
	r.hasHoles = base.HasHoles()
	r.initializeInventory()
	r.assembleLevels()
	r.log.Debug("base level set", levelFields(base)...)
	return nil
}

// RefineUniform splits every face of every level until
// opts.RefinementLevel levels have been added.
//
// Errors (as *Error of kind RuntimeError, state unchanged):
//   - ErrBaseLevelUninitialized: the base level has no vertices.
//   - ErrAlreadyRefined: refinements exist.
//   - ErrDepthOutOfRange: RefinementLevel outside [0, MaxRefinementLevel].
func (r *TopologyRefiner) RefineUniform(opts UniformOptions) error {
	if err := r.checkRefinable(methodRefineUniform); err != nil {
		return err
	}
	if opts.RefinementLevel < 0 || opts.RefinementLevel > MaxRefinementLevel {
		return r.fail(RuntimeError, methodRefineUniform,
			fmt.Errorf("refinement level %d: %w", opts.RefinementLevel, ErrDepthOutOfRange))
	}

	refineOpts := topology.RefinementOptions{FaceVertsFirst: opts.OrderVerticesFromFacesFirst}
	for i := 1; i <= opts.RefinementLevel; i++ {
		refineOpts.MinimalTopology = !opts.FullTopologyInLastLevel && i == opts.RefinementLevel

		ref := r.newRefinement(r.levels[i-1])
		if err := ref.Refine(refineOpts); err != nil {
			r.discardRefinements()
			return r.fail(FatalError, methodRefineUniform, err)
		}
		r.appendLevel(ref.Child())
		r.refinements = append(r.refinements, ref)
	}
	r.uniformOptions = opts
	r.isUniform = true
	r.maxLevel = opts.RefinementLevel
	r.assembleLevels()
	return nil
}

// RefineAdaptive refines only the faces carrying the features implied by
// opts, up to opts.IsolationLevel levels. Refinement stops early at the
// first depth where nothing is selected; MaxLevel reports the depth reached.
//
// Errors (as *Error of kind RuntimeError, state unchanged):
//   - ErrBaseLevelUninitialized, ErrAlreadyRefined as for RefineUniform.
//   - ErrUnsupportedScheme: the scheme is not Catmark.
//   - ErrDepthOutOfRange: IsolationLevel outside [0, MaxRefinementLevel].
func (r *TopologyRefiner) RefineAdaptive(opts AdaptiveOptions) error {
	if err := r.checkRefinable(methodRefineAdaptive); err != nil {
		return err
	}
	if r.schemeType != scheme.Catmark {
		return r.fail(RuntimeError, methodRefineAdaptive,
			fmt.Errorf("scheme %s: %w", r.schemeType, ErrUnsupportedScheme))
	}
	if opts.IsolationLevel < 0 || opts.IsolationLevel > MaxRefinementLevel {
		return r.fail(RuntimeError, methodRefineAdaptive,
			fmt.Errorf("isolation level %d: %w", opts.IsolationLevel, ErrDepthOutOfRange))
	}

	shallowLevel := min(opts.secondaryLevel(), opts.IsolationLevel)
	deeperLevel := opts.IsolationLevel

	moreFeatures, lessFeatures := r.adaptiveMasks(opts, shallowLevel, deeperLevel)

	refineOpts := topology.RefinementOptions{
		Sparse:         true,
		FaceVertsFirst: opts.OrderVerticesFromFacesFirst,
	}
	for i := 1; i <= deeperLevel; i++ {
		ref := r.newRefinement(r.levels[i-1])
		sel := topology.NewSparseSelector(ref)

		mask := lessFeatures
		if i <= shallowLevel {
			mask = moreFeatures
		}
		selectFeatureAdaptiveComponents(sel, mask, r.schemeType)
		if sel.IsSelectionEmpty() {
			r.log.Debug("adaptive refinement terminated",
				zap.Int("depth", i-1), zap.String("reason", "no faces selected"))
			break
		}
		if err := ref.Refine(refineOpts); err != nil {
			r.discardRefinements()
			return r.fail(FatalError, methodRefineAdaptive, err)
		}
		r.appendLevel(ref.Child())
		r.refinements = append(r.refinements, ref)
	}
	r.isUniform = false
	r.adaptiveOptions = opts
	r.maxLevel = len(r.refinements)
	r.assembleLevels()
	return nil
}

// adaptiveMasks builds the feature masks used up to and beyond shallowLevel.
func (r *TopologyRefiner) adaptiveMasks(opts AdaptiveOptions, shallowLevel, deeperLevel int) (*FeatureMask, *FeatureMask) {
	more := NewFeatureMask(opts, r.schemeType)
	less := more.Clone()
	if shallowLevel < deeperLevel {
		less.ReduceFeatures(opts)
	}

	// Face-local schemes only care about irregular faces.
	if scheme.LocalNeighborhoodSize(r.schemeType) == 0 {
		more.Clear()
		less.Clear()
	} else if more.Has(SelectFVarFeatures) {
		nonLinear := false
		base := r.levels[0]
		for c := 0; c < base.NumFVarChannels(); c++ {
			nonLinear = nonLinear || !base.FVarChannel(c).IsLinear()
		}
		if !nonLinear {
			more.Set(SelectFVarFeatures, false)
			less.Set(SelectFVarFeatures, false)
		}
	}
	r.log.Debug("adaptive feature masks",
		zap.Stringer("shallow", more), zap.Stringer("deep", less),
		zap.Int("shallowLevel", shallowLevel), zap.Int("deeperLevel", deeperLevel))
	return more, less
}

// Unrefine discards every level above the base and every refinement.
// MaxLevel drops back to 0; IsUniform and the last options are kept.
func (r *TopologyRefiner) Unrefine() {
	r.discardRefinements()
	r.maxLevel = 0
	r.assembleLevels()
	r.log.Debug("unrefined", zap.Int("levels", len(r.levels)))
}

// discardRefinements truncates both stacks to the base level and resets
// the inventory. The views are left for the caller to reassemble.
func (r *TopologyRefiner) discardRefinements() {
	for i := 1; i < len(r.levels); i++ {
		r.levels[i] = nil
	}
	r.levels = r.levels[:1]
	for i := range r.refinements {
		r.refinements[i] = nil
	}
	r.refinements = r.refinements[:0]
	r.initializeInventory()
}

// checkRefinable enforces the preconditions shared by both refine calls.
func (r *TopologyRefiner) checkRefinable(method string) error {
	if r.levels[0].NumVertices() == 0 {
		return r.fail(RuntimeError, method, ErrBaseLevelUninitialized)
	}
	if len(r.refinements) > 0 {
		return r.fail(RuntimeError, method, ErrAlreadyRefined)
	}
	return nil
}

// newRefinement binds parent to a fresh child with the scheme's split.
func (r *TopologyRefiner) newRefinement(parent *topology.Level) *topology.Refinement {
	child := topology.NewLevel()
	if scheme.TopologicalSplitType(r.schemeType) == scheme.SplitToQuads {
		return topology.NewQuadRefinement(parent, child, r.schemeOptions)
	}
	return topology.NewTriRefinement(parent, child, r.schemeOptions)
}

// appendLevel pushes a child level and accumulates its counts.
func (r *TopologyRefiner) appendLevel(l *topology.Level) {
	r.levels = append(r.levels, l)
	r.inv.add(l)
	r.log.Debug("level appended", levelFields(l)...)
}

// fail wraps err, reports it and logs it.
func (r *TopologyRefiner) fail(kind ErrorKind, method string, err error) error {
	e := &Error{Kind: kind, Method: method, Err: err}
	if r.report != nil {
		r.report(kind, e.Error())
	}
	r.log.Warn("refiner call rejected",
		zap.String("method", method), zap.Stringer("kind", kind), zap.Error(err))
	return e
}

func levelFields(l *topology.Level) []zap.Field {
	return []zap.Field{
		zap.Int("depth", l.Depth()),
		zap.Int("vertices", l.NumVertices()),
		zap.Int("edges", l.NumEdges()),
		zap.Int("faces", l.NumFaces()),
	}
}

// SchemeType returns the subdivision scheme.
func (r *TopologyRefiner) SchemeType() scheme.Type { return r.schemeType }

// SchemeOptions returns the scheme options.
func (r *TopologyRefiner) SchemeOptions() scheme.Options { return r.schemeOptions }

// IsUniform reports whether the last refinement was uniform. A refiner that
// was never refined reports true.
func (r *TopologyRefiner) IsUniform() bool { return r.isUniform }

// HasHoles reports whether the base level has hole faces.
func (r *TopologyRefiner) HasHoles() bool { return r.hasHoles }

// MaxLevel returns the deepest refinement level reached.
func (r *TopologyRefiner) MaxLevel() int { return r.maxLevel }

// NumLevels returns the number of levels including the base.
func (r *TopologyRefiner) NumLevels() int { return len(r.levels) }

// UniformOptions returns the options of the last RefineUniform.
func (r *TopologyRefiner) UniformOptions() UniformOptions { return r.uniformOptions }

// AdaptiveOptions returns the options of the last RefineAdaptive.
func (r *TopologyRefiner) AdaptiveOptions() AdaptiveOptions { return r.adaptiveOptions }

// Refinement returns the refinement producing level i+1, or nil.
func (r *TopologyRefiner) Refinement(i int) *topology.Refinement {
	if i < 0 || i >= len(r.refinements) {
		return nil
	}
	return r.refinements[i]
}

// NumFVarChannels returns the number of face-varying channels of the base level.
func (r *TopologyRefiner) NumFVarChannels() int { return r.levels[0].NumFVarChannels() }

// NumFVarValuesTotal sums the values of channel c over all levels.
func (r *TopologyRefiner) NumFVarValuesTotal(c int) int {
	sum := 0
	for _, l := range r.levels {
		sum += l.NumFVarValues(c)
	}
	return sum
}
