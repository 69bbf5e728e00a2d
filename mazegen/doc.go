// Package mazegen carves perfect mazes with a randomized iterative backtracker.
//
// The generator starts from an all-wall grid, opens (1,1) and runs a depth-first
// walk over the odd-coordinate lattice. Lattice neighbors sit two cells apart so
// the cell between them can be knocked down as the connecting passage. When the
// top of the stack has no unvisited lattice neighbor the walk backtracks.
//
// Every knock-down opens exactly two cells and joins one new lattice cell to
// the tree, so for odd sizes the result is a spanning tree of the lattice:
//
//	OpenCount() == 1 + 2*Knockdowns
//
// Determinism:
//
//   - Candidates are collected in Up, Right, Down, Left order before the random
//     pick, so a fixed seed reproduces the same grid bit for bit.
//   - Seed 0 is replaced by a fixed default seed. Randomness never comes from
//     the clock; pass WithRand to supply your own source.
//
// Complexity: O(W×H) time and memory without a trace; with tracing each step
// copies the grid, for O((W×H)²) total.
package mazegen
