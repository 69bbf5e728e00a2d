package dijkstra

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// Name identifies this engine in reports and metrics.
const Name = "dijkstra"

// Step is the trace record captured when a cell is finalized.
type Step struct {
	search.StepBase
	Distances map[grid.Coordinate]int // copy of the distance table at this step
	QueueSize int                     // heap entries left after the pop, stale ones included
	Distance  int                     // distance of Current
}

// Tables exposes the algorithm's internal state when the run ended.
type Tables struct {
	Distance map[grid.Coordinate]int
	Previous map[grid.Coordinate]grid.Coordinate
	Visited  search.Snapshot
}

// Result holds the outcome of one Dijkstra run.
type Result struct {
	Path     search.Path
	Steps    []Step // nil when tracing is disabled
	Expanded int    // cells finalized
	Tables   Tables
	State    search.State
}

// Info describes Dijkstra's algorithm for display.
func Info() search.AlgorithmInfo {
	return search.AlgorithmInfo{
		Name:            "Dijkstra (Greedy)",
		TimeComplexity:  "O((V + E) log V)",
		SpaceComplexity: "O(V)",
		Description:     "Greedy strategy: always finalize the closest unvisited cell, using a binary heap.",
		Advantages: []string{
			"Finds an exact shortest path",
			"Works for any non-negative edge weights",
			"Scales to large graphs",
			"Yields the distance to every finalized cell",
		},
		Disadvantages: []string{
			"Slower than BFS when all weights are equal",
			"Uses no heuristic to steer toward the goal",
			"More involved than BFS",
			"Visits many cells that are not on the path",
		},
	}
}
