package grid_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/grid"
)

// ExampleGrid_Neighbor walks the four neighbours of a corner cell on a
// periodic 3×3 grid, where every step off an edge wraps around.
func ExampleGrid_Neighbor() {
	g, _ := grid.New(3, 3, true)

	for _, d := range grid.Directions {
		n, _ := g.Neighbor(0, d, 1)
		x, y := g.Coordinate(n)
		fmt.Printf("%s: (%d,%d)\n", d, x, y)
	}

	// Output:
	// west: (2,0)
	// south: (0,1)
	// east: (1,0)
	// north: (0,2)
}
