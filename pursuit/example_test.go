package pursuit_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/pursuit"
)

// ExampleGame plays a short round and records it.
func ExampleGame() {
	g, _ := grid.Parse("#######\n#S....#\n#.###.#\n#....E#\n#######\n")
	gm, err := pursuit.NewGame(g, pursuit.Easy)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range []grid.Direction{grid.Down, grid.Down, grid.Right, grid.Right, grid.Right, grid.Right} {
		st, err := gm.MovePlayer(d)
		if err != nil || st != pursuit.Playing {
			fmt.Println(d, st)
			break
		}
	}

	stats := pursuit.NewStats()
	stats.Record(gm.Entry(20*time.Second, time.Time{}))
	fmt.Println(stats.Summary().Wins, stats.Leaderboard()[0].Score)
	// Output:
	// right won
	// 1 9770
}
