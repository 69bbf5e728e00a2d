package pursuit

import (
	"slices"

	"github.com/katalvlaran/mazelab/bfs"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// Enemy chases a target one BFS step at a time. The route is recomputed on
// every Chase, since the target moves between calls.
type Enemy struct {
	pos, initial grid.Coordinate
	history      []grid.Coordinate
	path         search.Path
}

// NewEnemy places an enemy at c. Reset returns it there.
func NewEnemy(c grid.Coordinate) *Enemy {
	return &Enemy{pos: c, initial: c, history: []grid.Coordinate{c}}
}

// Position returns the current cell.
func (e *Enemy) Position() grid.Coordinate { return e.pos }

// Path returns the route computed by the last Chase.
func (e *Enemy) Path() search.Path { return e.path.Clone() }

// History returns every cell occupied, spawn first.
func (e *Enemy) History() []grid.Coordinate { return slices.Clone(e.history) }

// DistanceTo returns the Manhattan distance from the enemy to c.
func (e *Enemy) DistanceTo(c grid.Coordinate) int { return grid.Manhattan(e.pos, c) }

// Chase finds a shortest path to target and steps onto its second cell.
// It reports false when already on target or when target is unreachable.
func (e *Enemy) Chase(g *grid.Grid, target grid.Coordinate) (bool, error) {
	res, err := bfs.FindPath(g, e.pos, target, search.WithTrace(false))
	if err != nil {
		return false, err
	}
	e.path = res.Path
	if len(res.Path) < 2 {
		return false, nil
	}
	e.pos = res.Path[1]
	e.history = append(e.history, e.pos)
	return true, nil
}

// Reset returns the enemy to its spawn and forgets history and route.
func (e *Enemy) Reset() {
	e.pos = e.initial
	e.history = []grid.Coordinate{e.initial}
	e.path = nil
}
