// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// errors.go — sentinel errors and the error-reporting channel.
//
// Error policy:
//   • Sentinels are package-level; callers branch with errors.Is.
//   • Every rejected precondition is returned as *Error (Kind RuntimeError),
//     passed to the installed ErrorReporter and logged. State is unchanged.
//   • Algorithms never panic; option constructors (WithX) do on nil input.

package refiner

import (
	"errors"
	"fmt"
)

var (
	// ErrBaseLevelUninitialized indicates a refine call on a refiner whose
	// base level has no vertices.
	ErrBaseLevelUninitialized = errors.New("refiner: base level is uninitialized")

	// ErrAlreadyRefined indicates a refine (or base level replacement) while
	// refinements exist; call Unrefine first.
	ErrAlreadyRefined = errors.New("refiner: previous refinements already applied")

	// ErrUnsupportedScheme indicates adaptive refinement of a scheme other than Catmark.
	ErrUnsupportedScheme = errors.New("refiner: adaptive refinement only supported for catmark")

	// ErrInvalidDescriptor indicates a TopologyDescriptor that cannot form a base level.
	ErrInvalidDescriptor = errors.New("refiner: invalid topology descriptor")

	// ErrDepthOutOfRange indicates a level depth or refinement level outside
	// the supported range.
	ErrDepthOutOfRange = errors.New("refiner: depth out of range")
)

// ErrorKind classifies reported errors.
type ErrorKind int

const (
	FatalError ErrorKind = iota
	CodingError
	RuntimeError
	Warning
)

// String names the kind.
func (k ErrorKind) String() string {
	switch k {
	case FatalError:
		return "fatal"
	case CodingError:
		return "coding"
	case RuntimeError:
		return "runtime"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Error is the error type returned by TopologyRefiner operations.
type Error struct {
	Kind   ErrorKind
	Method string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorReporter receives every error a TopologyRefiner reports.
type ErrorReporter func(kind ErrorKind, msg string)
