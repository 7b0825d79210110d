// SPDX-License-Identifier: MIT
// Command subdtopo refines base meshes and reports the topology of every
// level: vertices, edges, faces, face-vertices and maximum valence.
//
//	subdtopo solid cube --uniform 2
//	subdtopo solid dodecahedron --adaptive 4 --random-creases 0.3 --seed 7
//	subdtopo refine --config run.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
