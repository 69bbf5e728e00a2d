// Package mazelab is a sandbox for perfect-maze generation and grid
// shortest-path search.
//
// What is in the box:
//
//   - grid:     rectangular open/wall grids, text and msgpack+zstd codecs
//   - mazegen:  seeded randomized backtracker producing perfect mazes
//   - search:   the contract shared by every engine (paths, traces, state)
//   - bfs:      FIFO search, plus NextMove for one-step pursuit
//   - dijkstra: lazy-deletion heap search exposing distance tables
//   - astar:    Manhattan-guided search exposing g/f tables
//   - pursuit:  the chase game: player, BFS enemy, scoring, stats
//   - sandbox:  concurrent engine comparison with slog and Prometheus
//
// The mazelab command in cmd/mazelab wires them together.
//
// Quick ASCII example (S start, E exit, * path):
//
//	#######
//	#S#***#
//	#*#*#*#
//	#***#E#
//	#######
//
// Every engine is a pure function of its inputs: it reads the grid, never
// writes it, and keeps all state local to the call. Engines may therefore run
// concurrently on one grid.
package mazelab
