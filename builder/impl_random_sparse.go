// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_random_sparse.go — implementation of RandomCreases(p) constructor.
//
// Canonical model:
//   • Bernoulli sampling over the edges of the descriptor built so far: each
//     edge becomes a crease independently with probability p.
//   • Edges are visited once each, in order of first appearance in the face
//     lists (lower vertex first).
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//   • Sharpness of every crease comes from cfg.sharpness (default: infinite).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(Σ face sizes). Space: O(E) for the edge set.
//
// Determinism:
//   • Stable edge-trial order; identical output for a fixed seed and
//     constructor order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refiner"
)

// RandomCreases returns a Constructor that tags each existing edge as a
// crease with probability p.
func RandomCreases(p float64) Constructor {
	return func(d *refiner.TopologyDescriptor, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side effects).
		if err := validateProbability(MethodRandomCreases, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomCreases, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		// 2) One trial per edge in stable order.
		for _, e := range uniqueEdges(d) {
			if p < MaxProbability && cfg.rng.Float64() >= p {
				continue
			}
			d.Creases = append(d.Creases, refiner.CreaseTag{V0: e[0], V1: e[1], Sharpness: cfg.sharpness(0)})
		}
		return nil
	}
}
