// Package builder provides validation and assembly helpers shared by the
// Constructor factories.
//
// Each validator returns an error wrapping a builder sentinel with the
// constructor name as prefix when its precondition is violated.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewVertices".
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %f: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}
	return nil
}

// validateSharpness rejects sharpness above SharpnessInfinite. Non-positive
// values are allowed: they select the configured default.
func validateSharpness(method string, s float32) error {
	if s > scheme.SharpnessInfinite || math.IsNaN(float64(s)) {
		return fmt.Errorf("%s: sharpness %g: %w", method, s, ErrOptionViolation)
	}
	return nil
}

// validateVertex ensures v names a vertex of d.
func validateVertex(method string, d *refiner.TopologyDescriptor, v int) error {
	if v < 0 || v >= d.NumVertices {
		return fmt.Errorf("%s: vertex %d of %d: %w", method, v, d.NumVertices, ErrComponentOutOfRange)
	}
	return nil
}

// validateFace ensures f names a face of d.
func validateFace(method string, d *refiner.TopologyDescriptor, f int) error {
	if f < 0 || f >= len(d.FaceVertices) {
		return fmt.Errorf("%s: face %d of %d: %w", method, f, len(d.FaceVertices), ErrComponentOutOfRange)
	}
	return nil
}

// appendComponent adds numVerts vertices and faces (indexed from 0) to d,
// offsetting every face index by the vertices already present.
func appendComponent(method string, d *refiner.TopologyDescriptor, numVerts int, faces [][]int) error {
	if len(d.FVarChannels) > 0 {
		return fmt.Errorf("%s: topology after face-varying channels: %w", method, ErrConstructFailed)
	}
	base := d.NumVertices
	for _, fv := range faces {
		out := make([]int, len(fv))
		for i, v := range fv {
			out[i] = v + base
		}
		d.FaceVertices = append(d.FaceVertices, out)
	}
	d.NumVertices += numVerts
	return nil
}

// uniqueEdges lists the edges of d once each, ordered by first appearance
// in face order, with the lower vertex first.
func uniqueEdges(d *refiner.TopologyDescriptor) [][2]int {
	seen := make(map[[2]int]bool)
	var out [][2]int
	for _, fv := range d.FaceVertices {
		for i, a := range fv {
			b := fv[(i+1)%len(fv)]
			e := [2]int{min(a, b), max(a, b)}
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}
