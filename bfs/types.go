package bfs

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// Name identifies this engine in reports and metrics.
const Name = "bfs"

// Step is the trace record captured when a cell is dequeued.
type Step struct {
	search.StepBase
	FrontierSize int         // queue length right after the dequeue
	Path         search.Path // copy of the path that reached Current
}

// Result holds the outcome of one BFS run.
type Result struct {
	Path     search.Path
	Steps    []Step // nil when tracing is disabled
	Expanded int    // cells dequeued, equal to len(Steps) when tracing
	Visited  search.Snapshot
	State    search.State
}

// Info describes breadth-first search for display.
func Info() search.AlgorithmInfo {
	return search.AlgorithmInfo{
		Name:            "BFS (Breadth-First Search)",
		TimeComplexity:  "O(V + E)",
		SpaceComplexity: "O(V)",
		Description:     "Explores cells in widening rings; guarantees a shortest path when every move costs the same.",
		Advantages: []string{
			"Finds a shortest path on unit-cost grids",
			"Simple to implement and reason about",
			"Fast enough for real-time pursuit AI",
			"Linear O(V+E) running time",
		},
		Disadvantages: []string{
			"Frontier can grow large on big open maps",
			"Not optimal once moves have different costs",
			"Uses no heuristic to steer toward the goal",
			"Visits many cells that are not on the path",
		},
	}
}

// queueItem pairs a frontier cell with the path that reached it.
type queueItem struct {
	cell grid.Coordinate
	path search.Path
}
