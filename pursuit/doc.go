// Package pursuit implements the maze chase game: a player walks from the
// maze start toward the exit while a BFS-driven enemy hunts them down.
//
// Turn order for one player move:
//
//  1. The move must be one step onto an open cell, otherwise ErrBlocked.
//  2. Reaching the exit wins immediately.
//  3. Stepping onto the enemy loses.
//  4. Every Difficulty.EnemyEvery() player moves the enemy takes one BFS step
//     toward the player; catching the player loses.
//
// The package never reads the clock. Callers measure elapsed time and pass it
// to Score and Stats.Record. A Game is not safe for concurrent use; Stats is.
package pursuit
