package refiner_test

import (
	"fmt"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

////////////////////////////////////////////////////////////////////////////////
// Uniform refinement
////////////////////////////////////////////////////////////////////////////////

// ExampleTopologyRefiner_RefineUniform splits every face of a cube twice.
func ExampleTopologyRefiner_RefineUniform() {
	r, _ := refiner.NewFromDescriptor(cubeDesc(), scheme.Catmark, scheme.DefaultOptions())
	_ = r.RefineUniform(refiner.DefaultUniformOptions(2))

	for _, lv := range r.Levels() {
		fmt.Printf("depth %d: %d verts, %d edges, %d faces\n",
			lv.Depth(), lv.NumVertices(), lv.NumEdges(), lv.NumFaces())
	}
	// Output:
	// depth 0: 8 verts, 12 edges, 6 faces
	// depth 1: 26 verts, 48 edges, 24 faces
	// depth 2: 98 verts, 192 edges, 96 faces
}

////////////////////////////////////////////////////////////////////////////////
// Adaptive refinement
////////////////////////////////////////////////////////////////////////////////

// ExampleTopologyRefiner_RefineAdaptive isolates the valence-5 vertex of a
// fan of quads, while a regular torus is left unrefined.
func ExampleTopologyRefiner_RefineAdaptive() {
	opts := refiner.DefaultAdaptiveOptions(3)

	fan, _ := refiner.NewFromDescriptor(fanDesc(5), scheme.Catmark, scheme.DefaultOptions())
	_ = fan.RefineAdaptive(opts)
	fmt.Println("fan:", fan.MaxLevel())

	torus, _ := refiner.NewFromDescriptor(torusDesc(4, 4), scheme.Catmark, scheme.DefaultOptions())
	_ = torus.RefineAdaptive(opts)
	fmt.Println("torus:", torus.MaxLevel())
	// Output:
	// fan: 3
	// torus: 0
}

// ExampleFeatureMask shows the features selected by default options.
func ExampleFeatureMask() {
	opts := refiner.DefaultAdaptiveOptions(2)
	opts.UseInfSharpPatch = true
	m := refiner.NewFeatureMask(opts, scheme.Catmark)
	m.ReduceFeatures(opts)
	fmt.Println(m)
	// Output:
	// {semi-sharp-single,semi-sharp-non-single,inf-sharp-irregular-corner,non-manifold}
}
