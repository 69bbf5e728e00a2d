package astar

import (
	"container/heap"
	"maps"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// FindPath computes a shortest path from start to goal on g using A*.
//
// Returns search.ErrNilGrid or search.ErrInvalidEndpoint for invalid input.
// An unreachable goal yields an empty Path and State Exhausted.
//
// Complexity:
//
//   - Time:  O((V + E) log V), plus O(V) per step while tracing
//   - Space: O(V + E)
func FindPath(g *grid.Grid, start, goal grid.Coordinate, opts ...search.Option) (*Result, error) {
	// 1) Validate endpoints before touching any state
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	// 2) Build the run state and seed the open set with start
	r := &runner{
		g:      g,
		start:  start,
		goal:   goal,
		opts:   search.Apply(opts...),
		gScore: make(map[grid.Coordinate]int),
		fScore: make(map[grid.Coordinate]int),
		prev:   make(map[grid.Coordinate]grid.Coordinate),
		closed: search.NewVisitedSet(),
		res:    &Result{Path: search.Path{}, State: search.Running},
	}
	r.open(start, 0)
	r.process()

	// 3) Hand the final tables back alongside the path
	r.res.Tables = Tables{G: r.gScore, F: r.fScore, Previous: r.prev, Visited: r.closed.Snapshot()}
	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g           *grid.Grid
	start, goal grid.Coordinate
	opts        search.Options
	gScore      map[grid.Coordinate]int             // best-known cost from start
	fScore      map[grid.Coordinate]int             // gScore plus heuristic
	prev        map[grid.Coordinate]grid.Coordinate // predecessor on the best-known path
	closed      *search.VisitedSet                  // expanded cells
	pq          openPQ
	res         *Result
}

// open records g for c and pushes it with f = g + h.
func (r *runner) open(c grid.Coordinate, g int) {
	f := g + Heuristic(c, r.goal)
	r.gScore[c] = g
	r.fScore[c] = f
	heap.Push(&r.pq, &openItem{cell: c, g: g, f: f})
}

// process expands the lowest-f cell until goal is closed or the open set
// empties. A cell may sit in the heap several times; only the first pop counts.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*openItem)
		u := item.cell
		// stale entry for an already closed cell
		if r.closed.Has(u) {
			continue
		}
		r.closed.Add(u)
		r.record(item)

		if u == r.goal {
			r.res.Path = search.ReconstructPath(r.prev, r.start, r.goal)
			r.res.State = search.Found
			return
		}

		for _, v := range r.g.Neighbors(u) {
			if r.closed.Has(v) {
				continue
			}
			// unit step cost; strict improvement only
			tentative := item.g + 1
			if old, seen := r.gScore[v]; seen && tentative >= old {
				continue
			}
			r.prev[v] = u
			r.open(v, tentative)
		}
	}
	r.res.State = search.Exhausted
}

// record counts the expansion and, when tracing, appends a Step with copies
// of the score maps. QueueSize is taken after the pop.
func (r *runner) record(item *openItem) {
	r.res.Expanded++
	if !r.opts.Trace {
		return
	}
	r.res.Steps = append(r.res.Steps, Step{
		StepBase:  search.StepBase{Current: item.cell, Visited: r.closed.Snapshot()},
		GScores:   maps.Clone(r.gScore),
		FScores:   maps.Clone(r.fScore),
		QueueSize: r.pq.Len(),
		G:         item.g,
		F:         item.f,
		H:         item.f - item.g,
	})
}

// openItem is one heap entry. g and f are frozen at push time.
type openItem struct {
	cell grid.Coordinate
	g, f int
}

// openPQ is a min-heap ordered by (f, g, x, y). Only (f, g) is meaningful;
// the coordinate order just makes runs reproducible.
type openPQ []*openItem

// Len, Less, Swap, Push, Pop implement heap.Interface.
func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	switch {
	case a.f != b.f:
		return a.f < b.f
	case a.g != b.g:
		return a.g < b.g
	case a.cell.X != b.cell.X:
		return a.cell.X < b.cell.X
	default:
		return a.cell.Y < b.cell.Y
	}
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(*openItem)) }

// Pop removes the last element; heap.Pop has already swapped the minimum there.
func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
