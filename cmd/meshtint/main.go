// Meshtint - colour palettes and motion for animated mesh gradients
//
// Meshtint generates the control points, per-point colours and animated
// point positions that a renderer needs to draw a mesh gradient.
package main

import (
	"os"

	"github.com/jmylchreest/meshtint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
