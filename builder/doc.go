// Package builder provides reusable "functional-options"-style building blocks
// for base-mesh descriptors consumed by the refiner package. It centralizes
// canonical test meshes, sharpness distributions and validation logic, keeping
// refinement tests and tools DRY, deterministic and consistent.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildDescriptor:   applies Constructors in order to an empty descriptor.
//     – BuildRefiner:      BuildDescriptor followed by refiner.NewFromDescriptor.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the sharpness generator.
//   - Topology constructors (append a disjoint component, indices offset):
//     – PlatonicSolid:     Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron.
//     – Grid, Torus:       open and closed quad meshes.
//     – Fan, Wheel:        quads or triangles around one extraordinary vertex.
//     – Polygon:           a single n-sided face.
//   - Tag constructors (annotate what is already built):
//     – Crease, Corner, Hole, RandomCreases.
//     – FVarContinuous, FVarSeams: face-varying channels.
//   - Sharpness distributions (SharpnessFn implementations):
//     – DefaultSharpnessFn:  constant DefaultTagSharpness (infinitely sharp).
//     – ConstantSharpnessFn: fixed user-provided value.
//     – UniformSharpnessFn:  uniform ∼U[min,max).
//   - Shared constants:
//     – MinGridDim, MinTorusDim, MinFanValence, MinPolygonSides.
//     – MinProbability, MaxProbability.
//     – MethodGrid, MethodCrease, … tokens prefixing every error.
//
// Guarantees:
//
//   - Deterministic output: same constructors, options and seed yield the same
//     descriptor.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors never panic; they return errors wrapping the package
//     sentinels, prefixed with the constructor name.
//   - All canonical solids are closed and consistently oriented.
//
// See individual function documentation for detailed contracts and
// performance notes.
package builder
