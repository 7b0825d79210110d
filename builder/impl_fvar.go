// SPDX-License-Identifier: MIT
// Package: subdiv/builder
//
// impl_fvar.go — implementation of FVarSeams and FVarContinuous.
//
// Both append one face-varying channel covering every face present when the
// constructor runs. Topology constructors placed after them fail with
// ErrConstructFailed, since the channel would no longer mirror the faces.
//
// Canonical model:
//   • FVarContinuous: one value per vertex; the value index of a corner is its
//     vertex index. The channel matches the vertex topology everywhere.
//   • FVarSeams: one value per face corner; no two faces share a value, so
//     every interior edge is a seam and every vertex is discontinuous.
//
// Contract:
//   • The descriptor must already hold at least one face (else
//     ErrConstructFailed).
//   • The interpolation is stored by name; BuildBaseLevel parses it back.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

// FVarContinuous returns a Constructor that appends a channel sharing one
// value per vertex.
func FVarContinuous(interp scheme.FVarLinearInterpolation) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if len(d.FaceVertices) == 0 {
			return fmt.Errorf("%s: no faces to cover: %w", MethodFVarContinuous, ErrConstructFailed)
		}

		ch := refiner.FVarChannelDesc{
			Interpolation: interp.String(),
			NumValues:     d.NumVertices,
			FaceValues:    make([][]int, len(d.FaceVertices)),
		}
		for f, fv := range d.FaceVertices {
			ch.FaceValues[f] = append([]int(nil), fv...)
		}
		d.FVarChannels = append(d.FVarChannels, ch)
		return nil
	}
}

// FVarSeams returns a Constructor that appends a channel with a distinct
// value at every face corner.
func FVarSeams(interp scheme.FVarLinearInterpolation) Constructor {
	return func(d *refiner.TopologyDescriptor, _ builderConfig) error {
		if len(d.FaceVertices) == 0 {
			return fmt.Errorf("%s: no faces to cover: %w", MethodFVarSeams, ErrConstructFailed)
		}

		ch := refiner.FVarChannelDesc{
			Interpolation: interp.String(),
			FaceValues:    make([][]int, len(d.FaceVertices)),
		}
		for f, fv := range d.FaceVertices {
			vals := make([]int, len(fv))
			for i := range vals {
				vals[i] = ch.NumValues
				ch.NumValues++
			}
			ch.FaceValues[f] = vals
		}
		d.FVarChannels = append(d.FVarChannels, ch)
		return nil
	}
}
