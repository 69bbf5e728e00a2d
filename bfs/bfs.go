package bfs

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	grid    *grid.Grid
	goal    grid.Coordinate
	opts    search.Options
	queue   []queueItem
	head    int
	visited *search.VisitedSet
	res     *Result
}

// FindPath runs breadth-first search from start to goal on g.
// Returns search.ErrNilGrid or search.ErrInvalidEndpoint for invalid input.
// An unreachable goal is reported as an empty Path with State Exhausted.
func FindPath(g *grid.Grid, start, goal grid.Coordinate, opts ...search.Option) (*Result, error) {
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	w := &walker{
		grid:    g,
		goal:    goal,
		opts:    search.Apply(opts...),
		queue:   make([]queueItem, 0, 16),
		visited: search.NewVisitedSet(),
		res:     &Result{Path: search.Path{}, State: search.Running},
	}

	// Seed with start; it counts as visited from the moment it is enqueued.
	w.enqueue(start, search.Path{start})
	w.loop()

	w.res.Visited = w.visited.Snapshot()
	return w.res, nil
}

// enqueue marks c visited and appends it with its path.
func (w *walker) enqueue(c grid.Coordinate, path search.Path) {
	w.visited.Add(c)
	w.queue = append(w.queue, queueItem{cell: c, path: path})
}

// dequeue pops the front item.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.queue[w.head] = queueItem{}
	w.head++
	return item
}

// loop processes the queue until the goal is dequeued or the queue empties.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		item := w.dequeue()
		w.record(item)

		if item.cell == w.goal {
			w.res.Path = item.path
			w.res.State = search.Found
			return
		}
		w.enqueueNeighbors(item)
	}
	w.res.State = search.Exhausted
}

// record appends the trace step for a dequeued item.
func (w *walker) record(item queueItem) {
	w.res.Expanded++
	if !w.opts.Trace {
		return
	}
	w.res.Steps = append(w.res.Steps, Step{
		StepBase:     search.StepBase{Current: item.cell, Visited: w.visited.Snapshot()},
		FrontierSize: len(w.queue) - w.head,
		Path:         item.path.Clone(),
	})
}

// enqueueNeighbors enqueues every open neighbor not yet visited, Up, Right, Down, Left.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, n := range w.grid.Neighbors(item.cell) {
		if w.visited.Has(n) {
			continue
		}
		// fresh backing array per child, so siblings never share a tail
		next := make(search.Path, len(item.path)+1)
		copy(next, item.path)
		next[len(item.path)] = n
		w.enqueue(n, next)
	}
}

// NextMove returns the cell after start on a shortest path to goal.
// ok is false when goal is unreachable or start == goal.
// Each call searches from scratch.
func NextMove(g *grid.Grid, start, goal grid.Coordinate) (next grid.Coordinate, ok bool, err error) {
	res, err := FindPath(g, start, goal, search.WithTrace(false))
	if err != nil {
		return grid.Coordinate{}, false, err
	}
	if len(res.Path) <= 1 {
		return grid.Coordinate{}, false, nil
	}
	return res.Path[1], true, nil
}
