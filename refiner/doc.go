// SPDX-License-Identifier: MIT

// Package refiner drives the refinement of a base mesh topology into a
// hierarchy of levels, either uniformly or adaptively around features.
//
// A TopologyRefiner owns two stacks: topology levels (level 0 is the base)
// and the refinements that connect consecutive levels. It is created with
// New or NewFromDescriptor and refined once with either
//
//   - RefineUniform: every face of every level is split, up to
//     UniformOptions.RefinementLevel levels.
//
//   - RefineAdaptive: only faces carrying selected features are split, up to
//     AdaptiveOptions.IsolationLevel levels. Catmark only.
//
// # Feature-adaptive selection
//
// At every depth a FeatureMask decides which features still need isolation.
// The mask is initialized from AdaptiveOptions and, past the secondary
// level, reduced to the features that remain irregular however deep the
// refinement goes. FaceHasFeatures and FaceHasDistinctFaceVaryingFeatures
// classify a single face from the combined tags of its corners; they are
// exported so levels can be inspected without refining.
//
// Adaptive refinement stops at the first depth where no face is selected,
// so a mesh without features keeps only its base level.
//
// # Errors
//
// Rejected calls return *Error wrapping one of the package sentinels
// (ErrAlreadyRefined, ErrUnsupportedScheme, ...) and leave the refiner
// unchanged. An optional ErrorReporter receives every reported error;
// WithLogger routes debug events and rejections to a zap logger.
//
// A TopologyRefiner is not safe for concurrent use. Its levels may be read
// concurrently once refinement has returned.
package refiner
