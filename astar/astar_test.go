package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/astar"
	"github.com/katalvlaran/mazelab/bfs"
	"github.com/katalvlaran/mazelab/dijkstra"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

const (
	corridor = "#######\n#S...E#\n#######\n"
	sealed   = "#######\n#S..#E#\n#######\n"
	wideRoom = ".........\n.........\n.........\n"
	loops    = `#########
#S......#
#.##.##.#
#.......#
#.##.##.#
#......E#
#########
`
)

func c(x, y int) grid.Coordinate { return grid.Coordinate{X: x, Y: y} }

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	require.NoError(t, err)
	return g
}

func TestHeuristic(t *testing.T) {
	assert.Equal(t, 0, astar.Heuristic(c(3, 3), c(3, 3)))
	assert.Equal(t, 7, astar.Heuristic(c(1, 1), c(5, 4)))
	assert.Equal(t, 7, astar.Heuristic(c(5, 4), c(1, 1)))
}

func TestFindPath_Errors(t *testing.T) {
	_, err := astar.FindPath(nil, c(1, 1), c(5, 1))
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g := mustParse(t, corridor)
	_, err = astar.FindPath(g, c(1, 1), c(6, 1))
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
}

// TestFindPath_Corridor checks the scores recorded at every step.
func TestFindPath_Corridor(t *testing.T) {
	g := mustParse(t, corridor)
	res, err := astar.FindPath(g, g.Start(), g.Exit())
	require.NoError(t, err)

	assert.Equal(t, search.Found, res.State)
	assert.Equal(t, search.Path{c(1, 1), c(2, 1), c(3, 1), c(4, 1), c(5, 1)}, res.Path)
	require.Len(t, res.Steps, 5)
	for i, s := range res.Steps {
		assert.Equal(t, i, s.G)
		assert.Equal(t, 4-i, s.H)
		assert.Equal(t, 4, s.F)
		assert.Equal(t, s.G, s.GScores[s.Current])
		assert.Equal(t, s.F, s.FScores[s.Current])
	}
	assert.Equal(t, 4, res.Tables.G[g.Exit()])
	assert.Equal(t, 4, res.Tables.F[g.Exit()])
	assert.Equal(t, c(4, 1), res.Tables.Previous[g.Exit()])
}

func TestFindPath_StartIsGoal(t *testing.T) {
	g := mustParse(t, corridor)
	res, err := astar.FindPath(g, c(4, 1), c(4, 1))
	require.NoError(t, err)

	assert.Equal(t, search.Path{c(4, 1)}, res.Path)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, 0, res.Steps[0].F)
}

func TestFindPath_Sealed(t *testing.T) {
	g := mustParse(t, sealed)
	res, err := astar.FindPath(g, g.Start(), g.Exit())
	require.NoError(t, err)

	assert.Equal(t, search.Exhausted, res.State)
	assert.Empty(t, res.Path)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, []grid.Coordinate{c(1, 1), c(2, 1), c(3, 1)}, res.Tables.Visited.Coordinates())
}

// TestFindPath_ScoresConsistent checks f = g + h and that h never overestimates.
func TestFindPath_ScoresConsistent(t *testing.T) {
	g := mustParse(t, loops)
	goal := g.Exit()
	res, err := astar.FindPath(g, g.Start(), goal)
	require.NoError(t, err)
	require.NotEmpty(t, res.Steps)

	for _, s := range res.Steps {
		assert.Equal(t, s.G+s.H, s.F)
		assert.Equal(t, astar.Heuristic(s.Current, goal), s.H)

		exact, err := dijkstra.FindPath(g, s.Current, goal, search.WithTrace(false))
		require.NoError(t, err)
		assert.LessOrEqualf(t, s.H, len(exact.Path)-1, "h overestimates at %v", s.Current)
	}
}

// TestFindPath_MatchesBFSLength keeps A* optimal on a maze with cycles.
func TestFindPath_MatchesBFSLength(t *testing.T) {
	g := mustParse(t, loops)
	a, err := astar.FindPath(g, g.Start(), g.Exit())
	require.NoError(t, err)
	b, err := bfs.FindPath(g, g.Start(), g.Exit())
	require.NoError(t, err)

	assert.Len(t, a.Path, len(b.Path))
	assert.True(t, a.Path.Valid(g))
}

// TestFindPath_ExpandsLessThanBFS shows the heuristic steering straight at the goal.
func TestFindPath_ExpandsLessThanBFS(t *testing.T) {
	g := mustParse(t, wideRoom)
	start, goal := c(4, 1), c(8, 1)

	a, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)
	b, err := bfs.FindPath(g, start, goal)
	require.NoError(t, err)

	assert.Equal(t, 5, a.Expanded)
	assert.Less(t, a.Expanded, b.Expanded)
	assert.Equal(t, search.Path{c(4, 1), c(5, 1), c(6, 1), c(7, 1), c(8, 1)}, a.Path)
}

func TestFindPath_TraceDisabled(t *testing.T) {
	g := mustParse(t, loops)
	res, err := astar.FindPath(g, g.Start(), g.Exit(), search.WithTrace(false))
	require.NoError(t, err)
	assert.Nil(t, res.Steps)
	assert.Equal(t, search.Found, res.State)
}

func TestEngine_Info(t *testing.T) {
	e := astar.Engine()
	assert.Equal(t, astar.Name, e.Name())
	info := e.Info()
	assert.Equal(t, "f(n) = g(n) + h(n)", info.Formula)
	assert.Contains(t, info.Heuristic, "Manhattan")

	g := mustParse(t, corridor)
	out, err := e.Solve(g, g.Start(), g.Exit())
	require.NoError(t, err)
	assert.Equal(t, 5, out.Steps)
	assert.Len(t, out.Path, 5)
}
