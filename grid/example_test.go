package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazelab/grid"
)

// ExampleGrid_Neighbors shows the fixed Up, Right, Down, Left order.
func ExampleGrid_Neighbors() {
	g, _ := grid.Parse("#.#\n...\n#.#\n")
	fmt.Println(g.Neighbors(grid.Coordinate{X: 1, Y: 1}))
	fmt.Println(g.IsWall(-1, 1), g.IsWall(0, 1))
	// Output:
	// [(1,0) (2,1) (1,2) (0,1)]
	// true false
}
