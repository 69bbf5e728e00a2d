package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazelab/grid"
)

// Sentinel errors shared by all engines.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to an engine.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidEndpoint is returned when start or goal is a wall or out of bounds.
	ErrInvalidEndpoint = errors.New("search: endpoint is not an open cell")
)

// State is the lifecycle position of a search run.
type State int

const (
	// Ready is a run that has not started.
	Ready State = iota
	// Running is a run in progress.
	Running
	// Found is a finished run that reached the goal.
	Found
	// Exhausted is a finished run whose frontier emptied without reaching the goal.
	Exhausted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// AlgorithmInfo is a static description of an algorithm for display.
type AlgorithmInfo struct {
	Name            string
	TimeComplexity  string
	SpaceComplexity string
	Description     string
	Formula         string // empty unless the algorithm has a scoring formula
	Heuristic       string // empty unless the algorithm uses a heuristic
	Advantages      []string
	Disadvantages   []string
}

// StepBase is the part of a trace record common to every engine.
type StepBase struct {
	Current grid.Coordinate // vertex dequeued or finalized at this step
	Visited Snapshot        // visited set as of this step
}

// VisitedCount returns the size of the visited snapshot.
func (b StepBase) VisitedCount() int { return b.Visited.Len() }

// Outcome is the engine-neutral summary of one run.
type Outcome struct {
	Path    Path
	Steps   int // number of trace records, i.e. vertices finalized
	Visited int // size of the final visited set
	State   State
}

// Engine is the uniform entry point collaborators use to run any algorithm.
type Engine interface {
	Name() string
	Info() AlgorithmInfo
	Solve(g *grid.Grid, start, goal grid.Coordinate) (Outcome, error)
}

// Options configures trace capture for an engine run.
type Options struct {
	// Trace enables per-step records with visited/score snapshots.
	Trace bool
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with tracing enabled.
func DefaultOptions() Options {
	return Options{Trace: true}
}

// WithTrace turns per-step trace capture on or off. Paths and score tables
// are identical either way.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// Apply builds Options from DefaultOptions and opts.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
