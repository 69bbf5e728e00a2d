// Package astar finds shortest paths in a maze grid with A* search.
//
// A* ranks open cells by f(n) = g(n) + h(n), where g is the exact cost from
// start and h is the Manhattan distance to goal. On a 4-connected grid with
// unit moves Manhattan distance never overestimates, so the first time goal
// is popped its g is optimal.
//
// Ordering:
//
//   - The open heap is keyed by (f, g): among equal f the entry with the
//     smaller g pops first. Remaining ties fall back to x, then y.
//   - Stale heap entries are discarded on pop once their cell is closed.
//
// Complexity:
//
//   - Time:  O((V + E) log V) in the worst case; far less when h is informative.
//   - Space: O(V + E)
package astar
