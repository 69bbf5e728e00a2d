package dijkstra

import (
	"container/heap"
	"maps"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// FindPath computes a shortest path from start to goal on g.
//
// Returns search.ErrNilGrid or search.ErrInvalidEndpoint for invalid input.
// An unreachable goal yields an empty Path, State Exhausted and the tables
// as they stood when the heap ran dry.
//
// Complexity:
//
//   - Time:  O((V + E) log V), plus O(V) per step while tracing
//   - Space: O(V + E)
func FindPath(g *grid.Grid, start, goal grid.Coordinate, opts ...search.Option) (*Result, error) {
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		start:   start,
		goal:    goal,
		opts:    search.Apply(opts...),
		dist:    make(map[grid.Coordinate]int),
		prev:    make(map[grid.Coordinate]grid.Coordinate),
		visited: search.NewVisitedSet(),
		pq:      make(nodePQ, 0, 16),
		res:     &Result{Path: search.Path{}, State: search.Running},
	}
	r.init()
	r.process()

	r.res.Tables = Tables{Distance: r.dist, Previous: r.prev, Visited: r.visited.Snapshot()}
	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g           *grid.Grid
	start, goal grid.Coordinate
	opts        search.Options
	dist        map[grid.Coordinate]int             // best-known distance from start
	prev        map[grid.Coordinate]grid.Coordinate // predecessor on the best-known path
	visited     *search.VisitedSet                  // finalized cells
	pq          nodePQ
	seq         uint64
	res         *Result
}

// init sets dist[start]=0 and seeds the heap.
func (r *runner) init() {
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

func (r *runner) push(c grid.Coordinate, d int) {
	heap.Push(&r.pq, &nodeItem{cell: c, dist: d, seq: r.seq})
	r.seq++
}

// process pops the closest cell until goal is finalized or the heap empties.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.cell, item.dist

		// stale entry for an already finalized cell
		if r.visited.Has(u) {
			continue
		}
		r.visited.Add(u)
		r.record(u, d)

		if u == r.goal {
			r.res.Path = search.ReconstructPath(r.prev, r.start, r.goal)
			r.res.State = search.Found
			return
		}
		r.relax(u, d)
	}
	r.res.State = search.Exhausted
}

// record appends the trace step for a finalized cell.
func (r *runner) record(u grid.Coordinate, d int) {
	r.res.Expanded++
	if !r.opts.Trace {
		return
	}
	r.res.Steps = append(r.res.Steps, Step{
		StepBase:  search.StepBase{Current: u, Visited: r.visited.Snapshot()},
		Distances: maps.Clone(r.dist),
		QueueSize: r.pq.Len(),
		Distance:  d,
	})
}

// relax offers d+1 to every open, unfinalized neighbor of u, Up, Right, Down, Left.
func (r *runner) relax(u grid.Coordinate, d int) {
	for _, v := range r.g.Neighbors(u) {
		if r.visited.Has(v) {
			continue
		}
		cand := d + 1
		if old, seen := r.dist[v]; seen && cand >= old {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		// lazy decrease-key: the older entry for v stays and is skipped on pop
		r.push(v, cand)
	}
}

// nodeItem is a heap entry: a cell, its tentative distance and push order.
type nodeItem struct {
	cell grid.Coordinate
	dist int
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
