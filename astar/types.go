package astar

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// Name identifies this engine in reports and metrics.
const Name = "astar"

// Heuristic estimates the remaining cost from a to b as their Manhattan distance.
func Heuristic(a, b grid.Coordinate) int { return grid.Manhattan(a, b) }

// Step is the trace record captured when a cell is closed.
type Step struct {
	search.StepBase
	GScores   map[grid.Coordinate]int // copy of g at this step
	FScores   map[grid.Coordinate]int // copy of f at this step
	QueueSize int
	G, F, H   int // scores of Current
}

// Tables exposes the g, f and predecessor tables when the run ended.
type Tables struct {
	G        map[grid.Coordinate]int
	F        map[grid.Coordinate]int
	Previous map[grid.Coordinate]grid.Coordinate
	Visited  search.Snapshot // closed set
}

// Result holds the outcome of one A* run.
type Result struct {
	Path     search.Path
	Steps    []Step
	Expanded int
	Tables   Tables
	State    search.State
}

// Info describes A* for display.
func Info() search.AlgorithmInfo {
	return search.AlgorithmInfo{
		Name:            "A* (Heuristic)",
		TimeComplexity:  "O((V + E) log V)",
		SpaceComplexity: "O(V)",
		Description:     "Best-first search guided by the cost so far plus an estimate of the remaining cost.",
		Formula:         "f(n) = g(n) + h(n)",
		Heuristic:       "Manhattan distance |x1 - x2| + |y1 - y2|",
		Advantages: []string{
			"Usually expands far fewer cells than BFS or Dijkstra",
			"Optimal with an admissible heuristic",
			"Heuristic can be swapped per problem",
		},
		Disadvantages: []string{
			"Quality depends on the heuristic",
			"Keeps g and f tables for every seen cell",
			"Gains little in mazes full of dead ends",
		},
	}
}
