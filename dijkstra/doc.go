// Package dijkstra finds shortest paths in a maze grid with Dijkstra's algorithm.
//
// Dijkstra finalizes cells in increasing distance from start using a min-heap
// priority queue and relaxes each finalized cell's open neighbors. Grid moves
// all cost 1, but the engine keeps the general weighted structure so its
// trace and distance table can be compared with BFS and A*.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each cell is finalized at most once: V extractions that do work.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor tables.
//   - O(E) worst-case heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - Lazy deletion instead of decrease-key: an improved distance pushes a new
//     entry and the old one stays in the heap. On pop, entries for cells that
//     are already finalized are discarded.
//   - Relaxation is strict: a neighbor is updated only when the candidate
//     distance is smaller than its recorded one.
//   - Equal distances pop in push order (each entry carries a sequence
//     number), so a given grid always yields the same trace.
//   - The search stops when goal is finalized; Tables reflect state as of that
//     moment (or as of heap exhaustion).
//
// Errors:
//
//   - search.ErrNilGrid         if the grid pointer is nil.
//   - search.ErrInvalidEndpoint if start or goal is not an open cell.
package dijkstra
