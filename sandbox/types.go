package sandbox

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// ErrNoEngines is returned by Compare when the runner has no engines.
var ErrNoEngines = errors.New("sandbox: no engines configured")

// Entry is one engine's result within a Report.
type Entry struct {
	Engine   string
	Path     search.Path
	Steps    int // cells expanded
	Visited  int
	State    search.State
	Duration time.Duration
}

// PathLength returns the number of cells on the path, 0 when none was found.
func (e Entry) PathLength() int { return len(e.Path) }

// Report collects the entries of one Compare call in engine order.
type Report struct {
	RunID       uuid.UUID
	Start, Goal grid.Coordinate
	Entries     []Entry
}

// Consistent reports whether every engine reached the same verdict and, when
// a path exists, the same path length. Paths themselves may differ.
func (r *Report) Consistent() bool {
	if len(r.Entries) == 0 {
		return true
	}
	first := r.Entries[0]
	for _, e := range r.Entries[1:] {
		if e.State != first.State || e.PathLength() != first.PathLength() {
			return false
		}
	}
	return true
}

// Entry returns the entry of the named engine.
func (r *Report) Entry(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Engine == name {
			return e, true
		}
	}
	return Entry{}, false
}

// LeastExpanded returns the entry with the fewest expanded cells; ties keep
// engine order. ok is false for an empty report.
func (r *Report) LeastExpanded() (best Entry, ok bool) {
	for i, e := range r.Entries {
		if i == 0 || e.Steps < best.Steps {
			best = e
		}
	}
	return best, len(r.Entries) > 0
}
