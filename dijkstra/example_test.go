package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/mazelab/dijkstra"
	"github.com/katalvlaran/mazelab/grid"
)

// ExampleFindPath reads the distance table after a search.
func ExampleFindPath() {
	g, _ := grid.Parse("#######\n#S...E#\n#######\n")
	res, _ := dijkstra.FindPath(g, g.Start(), g.Exit())
	fmt.Println(res.State, res.Tables.Distance[g.Exit()])
	fmt.Println(res.Path)
	// Output:
	// found 4
	// [(1,1) (2,1) (3,1) (4,1) (5,1)]
}
