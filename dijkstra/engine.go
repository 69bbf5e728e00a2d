package dijkstra

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

type engine struct{}

// Engine returns Dijkstra behind the search.Engine interface.
func Engine() search.Engine { return engine{} }

func (engine) Name() string               { return Name }
func (engine) Info() search.AlgorithmInfo { return Info() }

func (engine) Solve(g *grid.Grid, start, goal grid.Coordinate) (search.Outcome, error) {
	res, err := FindPath(g, start, goal, search.WithTrace(false))
	if err != nil {
		return search.Outcome{}, err
	}
	return search.Outcome{
		Path:    res.Path,
		Steps:   res.Expanded,
		Visited: res.Tables.Visited.Len(),
		State:   res.State,
	}, nil
}
