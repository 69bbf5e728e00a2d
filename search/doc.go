// Package search holds the contract shared by the maze shortest-path engines
// (bfs, dijkstra, astar): paths, visited-set snapshots, the per-step record
// base, run state, static algorithm descriptors, endpoint validation and
// predecessor-chain path reconstruction.
//
// State machine:
//
//	Ready → Running → {Found, Exhausted}
//
//	Every engine call is a fresh, self-contained run. Found carries a
//	non-empty Path; Exhausted carries an empty one. An unreachable goal is
//	not an error.
//
// Traces:
//
//	Engines return their trace as a plain slice built during the call and
//	handed back whole. Each record embeds StepBase, whose Visited field is a
//	Snapshot: a copy taken when the record was appended, never a live view.
//	Capturing snapshots costs O(V) per step; WithTrace(false) skips them.
//
// Errors:
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrInvalidEndpoint: start or goal is not an open cell.
package search
