package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/mazelab/dijkstra"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// openGrid returns an n×n grid with every cell open.
func openGrid(b *testing.B, n int) *grid.Grid {
	rows := make([][]int, n)
	for y := range rows {
		rows[y] = make([]int, n)
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkFindPath_Open measures Dijkstra corner to corner on an open 64×64 grid.
func BenchmarkFindPath_Open(b *testing.B) {
	g := openGrid(b, 64)
	start, goal := grid.Coordinate{}, grid.Coordinate{X: 63, Y: 63}

	b.Run("NoTrace", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = dijkstra.FindPath(g, start, goal, search.WithTrace(false))
		}
	})
	b.Run("Trace", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = dijkstra.FindPath(g, start, goal)
		}
	})
}
