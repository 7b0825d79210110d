// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// level_view.go — the assembled level sequence.
//
// Each depth is described by indices into the refiner's level and
// refinement stacks rather than by pointers, and the table is rebuilt as
// the last step of every operation that changes the stacks.

package refiner

import (
	"fmt"

	"github.com/katalvlaran/subdiv/topology"
)

// levelEntry indexes the refinements on either side of one level; -1 marks
// the missing side at the first and last depth.
type levelEntry struct {
	refToParent int
	level       int
	refToChild  int
}

// assembleLevels rebuilds the level sequence from the current stacks.
func (r *TopologyRefiner) assembleLevels() {
	n := len(r.levels)
	r.views = r.views[:0]
	for i := 0; i < n; i++ {
		e := levelEntry{refToParent: i - 1, level: i, refToChild: i}
		if i == n-1 {
			e.refToChild = -1
		}
		r.views = append(r.views, e)
	}
}

// LevelView is a read-only handle on one depth of a refiner.
type LevelView struct {
	r     *TopologyRefiner
	entry levelEntry
}

// Level returns the view of depth.
func (r *TopologyRefiner) Level(depth int) (LevelView, error) {
	if depth < 0 || depth >= len(r.views) {
		return LevelView{}, fmt.Errorf("Level: depth %d of %d: %w", depth, len(r.views), ErrDepthOutOfRange)
	}
	return LevelView{r: r, entry: r.views[depth]}, nil
}

// Levels returns the views of every depth, base first.
func (r *TopologyRefiner) Levels() []LevelView {
	out := make([]LevelView, len(r.views))
	for i, e := range r.views {
		out[i] = LevelView{r: r, entry: e}
	}
	return out
}

// Depth returns the depth of the view.
func (v LevelView) Depth() int { return v.entry.level }

// Topology returns the level itself.
func (v LevelView) Topology() *topology.Level { return v.r.levels[v.entry.level] }

// HasParent reports whether a refinement produced this level.
func (v LevelView) HasParent() bool { return v.entry.refToParent >= 0 }

// HasChild reports whether this level was refined further.
func (v LevelView) HasChild() bool { return v.entry.refToChild >= 0 }

// RefinementToParent returns the refinement that produced this level, or nil.
func (v LevelView) RefinementToParent() *topology.Refinement {
	if !v.HasParent() {
		return nil
	}
	return v.r.refinements[v.entry.refToParent]
}

// RefinementToChild returns the refinement applied to this level, or nil.
func (v LevelView) RefinementToChild() *topology.Refinement {
	if !v.HasChild() {
		return nil
	}
	return v.r.refinements[v.entry.refToChild]
}

// NumVertices returns the vertex count of the level.
func (v LevelView) NumVertices() int { return v.Topology().NumVertices() }

// NumEdges returns the edge count of the level.
func (v LevelView) NumEdges() int { return v.Topology().NumEdges() }

// NumFaces returns the face count of the level.
func (v LevelView) NumFaces() int { return v.Topology().NumFaces() }

// NumFaceVertices returns the face-vertex count of the level.
func (v LevelView) NumFaceVertices() int { return v.Topology().NumFaceVerticesTotal() }

// MaxValence returns the largest valence in the level.
func (v LevelView) MaxValence() int { return v.Topology().MaxValence() }
