package search

import (
	"fmt"

	"github.com/katalvlaran/mazelab/grid"
)

// Path is an ordered cell sequence from start to goal inclusive.
// An empty Path means no path exists.
type Path []grid.Coordinate

// Found reports whether p is non-empty.
func (p Path) Found() bool { return len(p) > 0 }

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and o hold the same cells in the same order.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Valid reports whether p is a walkable simple path on g: every cell open,
// consecutive cells one step apart, and no cell repeated. An empty path is valid.
func (p Path) Valid(g *grid.Grid) bool {
	seen := make(map[grid.Coordinate]struct{}, len(p))
	for i, c := range p {
		if !g.IsOpen(c.X, c.Y) {
			return false
		}
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
		if i > 0 && grid.Manhattan(p[i-1], c) != 1 {
			return false
		}
	}
	return true
}

// ValidateEndpoints rejects a nil grid and endpoints that are not open cells.
// Engines call it before any search state is allocated.
func ValidateEndpoints(g *grid.Grid, start, goal grid.Coordinate) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.IsOpen(start.X, start.Y) {
		return fmt.Errorf("%w: start %v", ErrInvalidEndpoint, start)
	}
	if !g.IsOpen(goal.X, goal.Y) {
		return fmt.Errorf("%w: goal %v", ErrInvalidEndpoint, goal)
	}
	return nil
}

// ReconstructPath walks previous from goal back to start and returns the
// path in start→goal order. If the chain breaks before start, it returns an
// empty path. previous is not modified, so repeated calls agree.
// Complexity: O(len(path)).
func ReconstructPath(previous map[grid.Coordinate]grid.Coordinate, start, goal grid.Coordinate) Path {
	var rev Path
	cur := goal
	for cur != start {
		rev = append(rev, cur)
		prev, ok := previous[cur]
		if !ok {
			return Path{}
		}
		cur = prev
		// a cycle in previous can only come from a corrupted table
		if len(rev) > len(previous)+1 {
			return Path{}
		}
	}
	rev = append(rev, start)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
