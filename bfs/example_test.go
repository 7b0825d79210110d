package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/subdiv/bfs"
	"github.com/katalvlaran/subdiv/builder"
	"github.com/katalvlaran/subdiv/scheme"
)

// ExampleBFS demonstrates face layering on a 3×3 quad grid. Faces are
// numbered row-major; each step crosses one shared edge.
func ExampleBFS() {
	d, _ := builder.BuildDescriptor(nil, builder.Grid(3, 3))
	l, err := d.BuildBaseLevel(scheme.Catmark, scheme.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(l, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleComponents counts the shells of a mesh made of two solids.
func ExampleComponents() {
	d, _ := builder.BuildDescriptor(nil,
		builder.PlatonicSolid(builder.Icosahedron),
		builder.PlatonicSolid(builder.Dodecahedron),
	)
	l, err := d.BuildBaseLevel(scheme.Catmark, scheme.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, n, _ := bfs.Components(l)
	fmt.Println("shells:", n)
	// Output:
	// shells: 2
}
