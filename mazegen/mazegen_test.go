package mazegen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/bfs"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/mazegen"
	"github.com/katalvlaran/mazelab/search"
)

func TestConfig_Validate(t *testing.T) {
	_, err := mazegen.Generate(mazegen.Config{Width: 2, Height: 9})
	assert.ErrorIs(t, err, mazegen.ErrInvalidConfig)

	_, err = mazegen.Generate(mazegen.Config{Width: 9, Height: -1})
	assert.ErrorIs(t, err, mazegen.ErrInvalidConfig)

	assert.NoError(t, mazegen.Config{Width: 3, Height: 3}.Validate())
}

func TestConfig_Recommended(t *testing.T) {
	cases := []struct {
		w, h int
		want bool
	}{
		{5, 5, true},
		{21, 15, true},
		{3, 5, false},
		{6, 7, false},
		{7, 8, false},
	}
	for _, tc := range cases {
		got := mazegen.Config{Width: tc.w, Height: tc.h}.Recommended()
		assert.Equalf(t, tc.want, got, "%dx%d", tc.w, tc.h)
	}
}

// TestGenerate_Deterministic reproduces identical grids from the same seed.
func TestGenerate_Deterministic(t *testing.T) {
	cfg := mazegen.Config{Width: 21, Height: 21, Seed: 42}
	a, err := mazegen.Generate(cfg, mazegen.WithTrace(false))
	require.NoError(t, err)
	b, err := mazegen.Generate(cfg, mazegen.WithTrace(false))
	require.NoError(t, err)
	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, a.Knockdowns, b.Knockdowns)

	other, err := mazegen.Generate(mazegen.Config{Width: 21, Height: 21, Seed: 43}, mazegen.WithTrace(false))
	require.NoError(t, err)
	assert.False(t, a.Grid.Equal(other.Grid))
}

// TestGenerate_ZeroSeed maps seed 0 onto the fixed default.
func TestGenerate_ZeroSeed(t *testing.T) {
	zero, err := mazegen.Generate(mazegen.Config{Width: 15, Height: 11})
	require.NoError(t, err)
	one, err := mazegen.Generate(mazegen.Config{Width: 15, Height: 11, Seed: 1})
	require.NoError(t, err)
	assert.True(t, zero.Grid.Equal(one.Grid))
}

func TestGenerate_WithRand(t *testing.T) {
	cfg := mazegen.Config{Width: 13, Height: 13, Seed: 7}
	seeded, err := mazegen.Generate(cfg)
	require.NoError(t, err)
	injected, err := mazegen.Generate(mazegen.Config{Width: 13, Height: 13}, mazegen.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.True(t, seeded.Grid.Equal(injected.Grid))
}

// TestGenerate_PerfectMaze checks the spanning-tree properties on several sizes.
func TestGenerate_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{5, 5}, {7, 9}, {21, 21}, {31, 15}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		res, err := mazegen.Generate(mazegen.Config{Width: w, Height: h, Seed: int64(w * h)}, mazegen.WithTrace(false))
		require.NoError(t, err)
		g := res.Grid

		lattice := ((w - 1) / 2) * ((h - 1) / 2)
		assert.Equalf(t, lattice-1, res.Knockdowns, "%dx%d knockdowns", w, h)
		assert.Equalf(t, 1+2*res.Knockdowns, g.OpenCount(), "%dx%d open cells", w, h)

		// a connected graph with V-1 edges is a tree
		edges := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if g.IsOpen(x, y) {
					edges += len(g.Neighbors(grid.Coordinate{X: x, Y: y}))
				}
			}
			assert.Truef(t, g.IsWall(0, y) && g.IsWall(w-1, y), "%dx%d border row %d", w, h, y)
		}
		assert.Equal(t, g.OpenCount()-1, edges/2)
		assert.Lenf(t, g.Components(), 1, "%dx%d components", w, h)

		reach, err := bfs.FindPath(g, g.Start(), g.Exit())
		require.NoError(t, err)
		assert.Equal(t, search.Found, reach.State)
	}
}

// TestGenerate_AllCellsReachable runs BFS from start to every open cell.
func TestGenerate_AllCellsReachable(t *testing.T) {
	res, err := mazegen.Generate(mazegen.Config{Width: 11, Height: 11, Seed: 3}, mazegen.WithTrace(false))
	require.NoError(t, err)
	g := res.Grid

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsOpen(x, y) {
				continue
			}
			out, err := bfs.FindPath(g, g.Start(), grid.Coordinate{X: x, Y: y}, search.WithTrace(false))
			require.NoError(t, err)
			assert.Truef(t, out.Path.Found(), "(%d,%d) unreachable", x, y)
		}
	}
}

// TestGenerate_Small5x5 has one lattice square: the start-exit path is 5 cells.
func TestGenerate_Small5x5(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		res, err := mazegen.Generate(mazegen.Config{Width: 5, Height: 5, Seed: seed})
		require.NoError(t, err)
		g := res.Grid

		assert.True(t, g.IsOpen(1, 1))
		assert.True(t, g.IsOpen(3, 3))
		assert.Equal(t, 7, g.OpenCount())

		p, err := bfs.FindPath(g, g.Start(), g.Exit())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(p.Path), 5)
		assert.True(t, p.Path.Valid(g))
	}
}

// TestGenerate_Trace checks the stack-examination records.
func TestGenerate_Trace(t *testing.T) {
	res, err := mazegen.Generate(mazegen.Config{Width: 9, Height: 9, Seed: 5})
	require.NoError(t, err)
	require.NotEmpty(t, res.Steps)

	first := res.Steps[0]
	assert.Equal(t, grid.Coordinate{X: 1, Y: 1}, first.Current)
	assert.Equal(t, 1, first.StackDepth)
	assert.Equal(t, 1, first.Grid.OpenCount())

	// every lattice cell is pushed once and popped once
	assert.Len(t, res.Steps, 2*res.Knockdowns+1)

	for i := 1; i < len(res.Steps); i++ {
		assert.GreaterOrEqual(t, res.Steps[i].Grid.OpenCount(), res.Steps[i-1].Grid.OpenCount())
		assert.Positive(t, res.Steps[i].StackDepth)
	}
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, 1, last.StackDepth)
	assert.True(t, last.Grid.Equal(res.Grid))
}

func TestGenerate_TraceDisabled(t *testing.T) {
	res, err := mazegen.Generate(mazegen.Config{Width: 9, Height: 9}, mazegen.WithTrace(false))
	require.NoError(t, err)
	assert.Nil(t, res.Steps)
}

// TestGenerate_DegenerateSizes still opens start and exit.
func TestGenerate_DegenerateSizes(t *testing.T) {
	for _, sz := range [][2]int{{3, 3}, {4, 6}, {6, 6}, {3, 10}} {
		res, err := mazegen.Generate(mazegen.Config{Width: sz[0], Height: sz[1]})
		require.NoError(t, err)
		g := res.Grid
		assert.Truef(t, g.IsOpen(g.Start().X, g.Start().Y), "%v start", sz)
		assert.Truef(t, g.IsOpen(g.Exit().X, g.Exit().Y), "%v exit", sz)
	}
}

func TestInfo(t *testing.T) {
	info := mazegen.Info()
	assert.Equal(t, "O(N × M)", info.TimeComplexity)
	assert.NotEmpty(t, info.Advantages)
}
