// Package bfs provides tunable options and error definitions
// for breadth-first search over the faces of a topology.Level.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// Sentinel errors for BFS execution.
var (
	// ErrLevelNil is returned if a nil level pointer is passed.
	ErrLevelNil = errors.New("bfs: level is nil")

	// ErrStartFaceNotFound is returned when the start face is out of range.
	ErrStartFaceNotFound = errors.New("bfs: start face not found")

	// ErrNoAdjacency is returned for levels without edge-face relations.
	ErrNoAdjacency = errors.New("bfs: level has no face adjacency")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a face. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(face, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a crossing by returning false.
	// Called for each step curr→neighbor across edge.
	FilterNeighbor func(curr, neighbor, edge int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every shared edge is crossed)
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(face, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips crossings when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor, edge int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// StopAtSharpEdges returns a filter that refuses to cross sharp edges of l,
// so a walk stays inside one smooth region.
func StopAtSharpEdges(l *topology.Level) func(curr, neighbor, edge int) bool {
	return func(_, _, edge int) bool {
		return scheme.IsSmooth(l.EdgeSharpness(edge))
	}
}

// SkipHoles returns a filter that never enters a hole face of l.
func SkipHoles(l *topology.Level) func(curr, neighbor, edge int) bool {
	return func(_, neighbor, _ int) bool {
		return !l.IsFaceHole(neighbor)
	}
}
