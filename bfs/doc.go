// Package bfs finds shortest paths in a maze grid with breadth-first search.
//
// What
//
//   - FindPath explores open cells in FIFO order from start and stops as soon
//     as goal is dequeued. It returns a Result containing:
//   - Path:  start→goal cells, or empty if goal is unreachable
//   - Steps: one Step per dequeued cell (current cell, visited snapshot,
//     frontier size after the dequeue, path-so-far)
//   - State: search.Found or search.Exhausted
//   - NextMove runs a full search and returns only the second path cell, for
//     one-step pursuit. It keeps no state between calls.
//
// Why
//
//   - Every move costs 1, so FIFO order is non-decreasing distance order and
//     the first time goal is dequeued its path is a shortest one.
//
// Determinism
//
//	Cells are marked visited when enqueued, never twice, and neighbors are
//	expanded Up, Right, Down, Left (grid.Neighbors). The same grid and
//	endpoints always give the same path and trace.
//
// Complexity (V = open cells, E = open adjacencies)
//
//   - Time:   O(V + E) for the search; tracing adds O(V) per step
//   - Memory: O(V) for the frontier and visited set (plus per-item paths)
//
// Errors
//
//   - search.ErrNilGrid         if the grid pointer is nil.
//   - search.ErrInvalidEndpoint if start or goal is not an open cell.
package bfs
