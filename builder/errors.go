// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "Grid: rows=0 ...: <sentinel>".
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols, valence,
// polygon sides) is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] (RandomCreases).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSolid indicates a PlatonicName outside the five known solids.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")

// ErrComponentOutOfRange indicates a tag constructor naming a vertex or face
// that the descriptor built so far does not contain.
var ErrComponentOutOfRange = errors.New("builder: component index out of range")

// ErrConstructFailed indicates a composition that cannot yield a valid
// descriptor (nil constructor, no faces, topology appended after
// face-varying channels).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter of a tag constructor that is
// meaningless in its domain (e.g. a sharpness above SharpnessInfinite).
var ErrOptionViolation = errors.New("builder: invalid option value")
