package search

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazelab/grid"
)

// VisitedSet is the live, growing set of visited cells owned by one run.
type VisitedSet struct {
	set mapset.Set[grid.Coordinate]
}

// NewVisitedSet returns an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{set: mapset.New[grid.Coordinate]()}
}

// Add inserts c.
func (v *VisitedSet) Add(c grid.Coordinate) { v.set.Put(c) }

// Has reports whether c was added.
func (v *VisitedSet) Has(c grid.Coordinate) bool { return v.set.Has(c) }

// Len returns the number of cells in the set.
func (v *VisitedSet) Len() int { return v.set.Size() }

// Snapshot copies the current contents into an immutable Snapshot.
// Complexity: O(V).
func (v *VisitedSet) Snapshot() Snapshot {
	cp := mapset.New[grid.Coordinate]()
	v.set.Each(func(c grid.Coordinate) { cp.Put(c) })
	return Snapshot{set: &cp}
}

// Snapshot is a read-only copy of a visited set. The zero value is empty.
type Snapshot struct {
	set *mapset.Set[grid.Coordinate]
}

// Has reports whether c is in the snapshot.
func (s Snapshot) Has(c grid.Coordinate) bool {
	return s.set != nil && s.set.Has(c)
}

// Len returns the number of cells in the snapshot.
func (s Snapshot) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Each calls fn for every cell in unspecified order.
func (s Snapshot) Each(fn func(grid.Coordinate)) {
	if s.set != nil {
		s.set.Each(fn)
	}
}

// SubsetOf reports whether every cell of s is also in o.
func (s Snapshot) SubsetOf(o Snapshot) bool {
	if s.Len() > o.Len() {
		return false
	}
	ok := true
	s.Each(func(c grid.Coordinate) {
		if ok && !o.Has(c) {
			ok = false
		}
	})
	return ok
}

// Coordinates returns the cells sorted row-major (by Y, then X).
func (s Snapshot) Coordinates() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, s.Len())
	s.Each(func(c grid.Coordinate) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
