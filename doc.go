// Package subdiv is an in-memory toolkit for refining the topology of
// subdivision surfaces, uniformly or adaptively around the features that
// break regular patches.
//
// What is in the box?
//
//	• Schemes: Bilinear, Catmark (Catmull–Clark) and Loop traits, boundary
//	  and face-varying interpolation, uniform and Chaikin crease decay
//	• Topology: index-based levels with vertex/edge/face tags, face-varying
//	  channels, quad and triangle split kernels, sparse face selection
//	• Refiner: uniform refinement, feature-adaptive isolation driven by a
//	  feature mask, per-level and aggregate inventories, level views
//	• Builder: deterministic base meshes (Platonic solids, grids, tori,
//	  fans, polygons) and tag constructors (creases, corners, holes,
//	  face-varying seams)
//	• BFS: face-adjacency walks, shells and crease-bounded regions
//
// Everything is organized under these subpackages:
//
//	scheme/   — scheme types, options, crease rules and sharpness decay
//	topology/ — Level, Refinement, FVarChannel, SparseSelector
//	refiner/  — TopologyRefiner, FeatureMask, classifiers, TopologyDescriptor
//	builder/  — functional-options mesh construction
//	bfs/      — breadth-first search over faces
//	cmd/subdtopo — command-line front end (cobra, zap, yaml)
//
// Quick example: a cube refined twice has 98 vertices, 192 edges and 96
// quads at depth 2.
//
//	r, _ := builder.BuildRefiner(scheme.Catmark, scheme.DefaultOptions(), nil, nil,
//	    builder.PlatonicSolid(builder.Cube))
//	_ = r.RefineUniform(refiner.DefaultUniformOptions(2))
//
//	go get github.com/katalvlaran/subdiv
package subdiv
