package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazelab/grid"
)

// latticeOffsets are the two-cell jumps in Up, Right, Down, Left order.
var latticeOffsets = [4][2]int{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// Generate carves a maze of cfg.Width×cfg.Height.
//
// Returns ErrInvalidConfig if either side is below 3. Any valid size succeeds;
// even or tiny sizes produce a sparse interior, see Config.Recommended.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	b := &builder{
		g:       g,
		rng:     rng,
		trace:   o.Trace,
		visited: make([][]bool, cfg.Height),
		res:     &Result{Grid: g},
	}
	for y := range b.visited {
		b.visited[y] = make([]bool, cfg.Width)
	}
	b.run(grid.Coordinate{X: 1, Y: 1})

	g.Carve(g.Start())
	g.Carve(g.Exit())
	return b.res, nil
}

// builder holds the state of one generation run.
type builder struct {
	g       *grid.Grid
	rng     *rand.Rand
	trace   bool
	visited [][]bool
	stack   []grid.Coordinate
	res     *Result
}

func (b *builder) run(origin grid.Coordinate) {
	b.g.Carve(origin)
	b.visited[origin.Y][origin.X] = true
	b.stack = append(b.stack, origin)

	for len(b.stack) > 0 {
		cur := b.stack[len(b.stack)-1]
		if b.trace {
			b.res.Steps = append(b.res.Steps, Step{Grid: b.g.Clone(), Current: cur, StackDepth: len(b.stack)})
		}

		cands := b.candidates(cur)
		if len(cands) == 0 {
			b.stack = b.stack[:len(b.stack)-1]
			continue
		}
		next := cands[b.rng.Intn(len(cands))]
		b.g.Carve(grid.Coordinate{X: (cur.X + next.X) / 2, Y: (cur.Y + next.Y) / 2})
		b.g.Carve(next)
		b.visited[next.Y][next.X] = true
		b.stack = append(b.stack, next)
		b.res.Knockdowns++
	}
}

// candidates lists unvisited lattice neighbors inside [1,W-2]×[1,H-2].
func (b *builder) candidates(c grid.Coordinate) []grid.Coordinate {
	out := make([]grid.Coordinate, 0, 4)
	for _, d := range latticeOffsets {
		n := c.Add(d[0], d[1])
		if n.X < 1 || n.X > b.g.Width-2 || n.Y < 1 || n.Y > b.g.Height-2 {
			continue
		}
		if !b.visited[n.Y][n.X] {
			out = append(out, n)
		}
	}
	return out
}
