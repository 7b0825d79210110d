// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// inventory.go — component counts aggregated over all levels.

package refiner

import "github.com/katalvlaran/subdiv/topology"

// Inventory sums component counts over every level of a refiner.
type Inventory struct {
	NumVertices     int
	NumEdges        int
	NumFaces        int
	NumFaceVertices int
	MaxValence      int
}

// reset restarts the counts from base alone.
func (inv *Inventory) reset(base *topology.Level) {
	*inv = Inventory{
		NumVertices:     base.NumVertices(),
		NumEdges:        base.NumEdges(),
		NumFaces:        base.NumFaces(),
		NumFaceVertices: base.NumFaceVerticesTotal(),
		MaxValence:      base.MaxValence(),
	}
}

// add accumulates the counts of an appended level.
func (inv *Inventory) add(l *topology.Level) {
	inv.NumVertices += l.NumVertices()
	inv.NumEdges += l.NumEdges()
	inv.NumFaces += l.NumFaces()
	inv.NumFaceVertices += l.NumFaceVerticesTotal()
	inv.MaxValence = max(inv.MaxValence, l.MaxValence())
}

func (r *TopologyRefiner) initializeInventory() { r.inv.reset(r.levels[0]) }

// Inventory returns the aggregate counts over all levels.
func (r *TopologyRefiner) Inventory() Inventory { return r.inv }

// NumVerticesTotal returns the vertex count summed over all levels.
func (r *TopologyRefiner) NumVerticesTotal() int { return r.inv.NumVertices }

// NumEdgesTotal returns the edge count summed over all levels.
func (r *TopologyRefiner) NumEdgesTotal() int { return r.inv.NumEdges }

// NumFacesTotal returns the face count summed over all levels.
func (r *TopologyRefiner) NumFacesTotal() int { return r.inv.NumFaces }

// NumFaceVerticesTotal returns the face-vertex count summed over all levels.
func (r *TopologyRefiner) NumFaceVerticesTotal() int { return r.inv.NumFaceVertices }

// MaxValence returns the largest vertex valence of any level.
func (r *TopologyRefiner) MaxValence() int { return r.inv.MaxValence }
