// Package builder defines shared constants used by descriptor builders,
// ensuring consistent method names and minimum sizes across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodTorus is the canonical name for the Torus constructor.
	MethodTorus = "Torus"
	// MethodFan is the canonical name for the Fan constructor.
	MethodFan = "Fan"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodCrease is the canonical name for the Crease constructor.
	MethodCrease = "Crease"
	// MethodCorner is the canonical name for the Corner constructor.
	MethodCorner = "Corner"
	// MethodHole is the canonical name for the Hole constructor.
	MethodHole = "Hole"
	// MethodFVarSeams is the canonical name for the FVarSeams constructor.
	MethodFVarSeams = "FVarSeams"
	// MethodFVarContinuous is the canonical name for the FVarContinuous constructor.
	MethodFVarContinuous = "FVarContinuous"
	// MethodRandomCreases is the canonical name for the RandomCreases constructor.
	MethodRandomCreases = "RandomCreases"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed dimension (rows or cols) of an open Grid.
const MinGridDim = 1

// MinTorusDim is the smallest allowed dimension of a Torus. Two rows or
// columns would make opposite edges of a face coincide.
const MinTorusDim = 3

// MinFanValence is the smallest valence of the center of a Fan or Wheel.
const MinFanValence = 3

// MinPolygonSides is the smallest number of sides of a face.
const MinPolygonSides = 3

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound of RandomCreases(p).
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of RandomCreases(p).
const MaxProbability = 1.0
