// SPDX-License-Identifier: MIT
// Package: subdiv/scheme
//
// options.go — scheme options that influence topological tagging.

package scheme

// BoundaryInterpolation selects how mesh boundaries are treated.
type BoundaryInterpolation int

const (
	// BoundaryNone leaves boundary edges smooth; faces touching the boundary
	// are excluded (tagged as holes) by schemes with a non-zero neighborhood.
	BoundaryNone BoundaryInterpolation = iota
	// BoundaryEdgeOnly sharpens boundary edges infinitely.
	BoundaryEdgeOnly
	// BoundaryEdgeAndCorner also sharpens vertices with a single incident face.
	BoundaryEdgeAndCorner
)

// String names the boundary mode.
func (b BoundaryInterpolation) String() string {
	switch b {
	case BoundaryNone:
		return "none"
	case BoundaryEdgeOnly:
		return "edge-only"
	case BoundaryEdgeAndCorner:
		return "edge-and-corner"
	default:
		return "unknown"
	}
}

// ParseBoundaryInterpolation maps a name produced by String back to its value.
func ParseBoundaryInterpolation(name string) (BoundaryInterpolation, bool) {
	for _, b := range []BoundaryInterpolation{BoundaryNone, BoundaryEdgeOnly, BoundaryEdgeAndCorner} {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// FVarLinearInterpolation selects which face-varying features are
// interpolated linearly.
type FVarLinearInterpolation int

const (
	FVarLinearNone FVarLinearInterpolation = iota
	FVarLinearCornersOnly
	FVarLinearCornersPlus1
	FVarLinearCornersPlus2
	FVarLinearBoundaries
	FVarLinearAll
)

// String names the interpolation mode.
func (f FVarLinearInterpolation) String() string {
	switch f {
	case FVarLinearNone:
		return "none"
	case FVarLinearCornersOnly:
		return "corners-only"
	case FVarLinearCornersPlus1:
		return "corners-plus1"
	case FVarLinearCornersPlus2:
		return "corners-plus2"
	case FVarLinearBoundaries:
		return "boundaries"
	case FVarLinearAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseFVarLinearInterpolation maps a name produced by String back to its value.
func ParseFVarLinearInterpolation(name string) (FVarLinearInterpolation, bool) {
	for f := FVarLinearNone; f <= FVarLinearAll; f++ {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// CreasingMethod selects how semi-sharp values decay.
type CreasingMethod int

const (
	CreasingUniform CreasingMethod = iota
	CreasingChaikin
)

// String names the creasing method.
func (c CreasingMethod) String() string {
	switch c {
	case CreasingUniform:
		return "uniform"
	case CreasingChaikin:
		return "chaikin"
	default:
		return "unknown"
	}
}

// ParseCreasingMethod maps a name produced by String back to its value.
func ParseCreasingMethod(name string) (CreasingMethod, bool) {
	for _, c := range []CreasingMethod{CreasingUniform, CreasingChaikin} {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Options groups the scheme choices consumed by tagging and refinement.
type Options struct {
	VtxBoundaryInterpolation BoundaryInterpolation
	FVarLinearInterpolation  FVarLinearInterpolation
	CreasingMethod           CreasingMethod
}

// DefaultOptions returns Options with boundary edges sharpened, face-varying
// data interpolated linearly and uniform creasing.
func DefaultOptions() Options {
	return Options{
		VtxBoundaryInterpolation: BoundaryEdgeOnly,
		FVarLinearInterpolation:  FVarLinearAll,
		CreasingMethod:           CreasingUniform,
	}
}
