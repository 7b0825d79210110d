// SPDX-License-Identifier: MIT
// Package: subdiv/refiner
//
// descriptor.go — a plain description of a base mesh and its tags, and its
// conversion into a finalized base level.

package refiner

import (
	"fmt"

	"github.com/katalvlaran/subdiv/scheme"
	"github.com/katalvlaran/subdiv/topology"
)

// CreaseTag assigns a sharpness to the edge between two vertices.
type CreaseTag struct {
	V0        int     `yaml:"v0"`
	V1        int     `yaml:"v1"`
	Sharpness float32 `yaml:"sharpness"`
}

// CornerTag assigns a sharpness to a vertex.
type CornerTag struct {
	Vertex    int     `yaml:"vertex"`
	Sharpness float32 `yaml:"sharpness"`
}

// FVarChannelDesc describes one face-varying channel. FaceValues mirrors
// FaceVertices. An empty Interpolation uses the scheme options.
type FVarChannelDesc struct {
	Interpolation string  `yaml:"interpolation,omitempty"`
	NumValues     int     `yaml:"num_values"`
	FaceValues    [][]int `yaml:"face_values"`
}

// TopologyDescriptor describes a base mesh by its face-vertex lists and
// optional sharpness, hole and face-varying data.
type TopologyDescriptor struct {
	NumVertices  int               `yaml:"num_vertices"`
	FaceVertices [][]int           `yaml:"faces"`
	Creases      []CreaseTag       `yaml:"creases,omitempty"`
	Corners      []CornerTag       `yaml:"corners,omitempty"`
	Holes        []int             `yaml:"holes,omitempty"`
	FVarChannels []FVarChannelDesc `yaml:"fvar_channels,omitempty"`
}

// BuildBaseLevel converts d into a base level tagged for scheme t.
//
// Errors wrap ErrInvalidDescriptor together with the topology sentinel that
// caused the rejection, so both match with errors.Is.
func (d *TopologyDescriptor) BuildBaseLevel(t scheme.Type, opts scheme.Options) (*topology.Level, error) {
	const method = "BuildBaseLevel"
	if d == nil {
		return nil, fmt.Errorf("%s: nil descriptor: %w", method, ErrInvalidDescriptor)
	}

	l, err := topology.NewBaseLevel(d.NumVertices, d.FaceVertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidDescriptor, err)
	}

	for i, c := range d.Creases {
		e := -1
		if c.V0 >= 0 && c.V0 < d.NumVertices {
			e = l.FindEdge(c.V0, c.V1)
		}
		if e < 0 {
			return nil, fmt.Errorf("%s: crease %d (%d,%d) is not an edge: %w", method, i, c.V0, c.V1, ErrInvalidDescriptor)
		}
		if err := l.SetEdgeSharpness(e, c.Sharpness); err != nil {
			return nil, fmt.Errorf("%s: crease %d: %w: %w", method, i, ErrInvalidDescriptor, err)
		}
	}
	for i, c := range d.Corners {
		if err := l.SetVertexSharpness(c.Vertex, c.Sharpness); err != nil {
			return nil, fmt.Errorf("%s: corner %d: %w: %w", method, i, ErrInvalidDescriptor, err)
		}
	}
	for _, f := range d.Holes {
		if err := l.SetFaceHole(f); err != nil {
			return nil, fmt.Errorf("%s: hole %d: %w: %w", method, f, ErrInvalidDescriptor, err)
		}
	}
	for i, ch := range d.FVarChannels {
		interp := opts.FVarLinearInterpolation
		if ch.Interpolation != "" {
			var ok bool
			if interp, ok = scheme.ParseFVarLinearInterpolation(ch.Interpolation); !ok {
				return nil, fmt.Errorf("%s: channel %d interpolation %q: %w", method, i, ch.Interpolation, ErrInvalidDescriptor)
			}
		}
		if _, err := l.AddFVarChannel(interp, ch.NumValues, ch.FaceValues); err != nil {
			return nil, fmt.Errorf("%s: channel %d: %w: %w", method, i, ErrInvalidDescriptor, err)
		}
	}

	if err := l.Finalize(t, opts); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidDescriptor, err)
	}
	return l, nil
}
