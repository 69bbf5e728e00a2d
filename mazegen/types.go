package mazegen

import (
	"errors"
	"math/rand"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// ErrInvalidConfig is returned when Config fails validation.
var ErrInvalidConfig = errors.New("mazegen: invalid config")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config describes the maze to generate.
type Config struct {
	Width  int   `validate:"gte=3"`
	Height int   `validate:"gte=3"`
	Seed   int64 // 0 selects the default seed
}

// Validate checks the size constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Recommended reports whether both sides are odd and at least 5, the sizes
// for which the maze fills the whole interior.
func (c Config) Recommended() bool {
	return c.Width >= 5 && c.Height >= 5 && c.Width%2 == 1 && c.Height%2 == 1
}

// Step is one stack-top examination of the backtracker.
type Step struct {
	Grid       *grid.Grid // copy of the maze so far
	Current    grid.Coordinate
	StackDepth int
}

// Result is the output of Generate.
type Result struct {
	Grid       *grid.Grid
	Steps      []Step // nil when tracing is disabled
	Knockdowns int    // walls removed between lattice cells
}

// Options configures Generate.
type Options struct {
	Trace bool
	Rand  *rand.Rand // overrides Config.Seed when set
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables tracing and seeds from Config.
func DefaultOptions() Options { return Options{Trace: true} }

// WithTrace toggles per-step grid snapshots.
func WithTrace(on bool) Option { return func(o *Options) { o.Trace = on } }

// WithRand injects a random source. A *rand.Rand is not safe for concurrent
// use; do not share one between concurrent Generate calls.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// Info describes the backtracking generator for display.
func Info() search.AlgorithmInfo {
	return search.AlgorithmInfo{
		Name:            "Backtracking",
		TimeComplexity:  "O(N × M)",
		SpaceComplexity: "O(N × M)",
		Description:     "Uses a stack to back up at dead ends, so every cell gets visited.",
		Advantages: []string{
			"Produces a perfect maze (one path between any two cells)",
			"Every cell is reachable",
			"Simple to understand and implement",
		},
		Disadvantages: []string{
			"Mazes tend toward long corridors with few branches",
			"Little control over maze texture",
			"Stack grows deep on large mazes",
		},
	}
}
