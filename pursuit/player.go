package pursuit

import (
	"slices"

	"github.com/katalvlaran/mazelab/grid"
)

// Player is the human-controlled walker.
type Player struct {
	pos     grid.Coordinate
	history []grid.Coordinate
	moves   int
}

// NewPlayer places a player at c with an empty move count.
func NewPlayer(c grid.Coordinate) *Player {
	return &Player{pos: c, history: []grid.Coordinate{c}}
}

// Position returns the current cell.
func (p *Player) Position() grid.Coordinate { return p.pos }

// Moves returns the number of successful moves.
func (p *Player) Moves() int { return p.moves }

// History returns every cell visited, starting position first.
func (p *Player) History() []grid.Coordinate { return slices.Clone(p.history) }

// CanMoveTo reports whether c is exactly one step away and open on g.
func (p *Player) CanMoveTo(g *grid.Grid, c grid.Coordinate) bool {
	return grid.Manhattan(p.pos, c) == 1 && g.IsOpen(c.X, c.Y)
}

// Move sets the position without checks and counts the move.
func (p *Player) Move(c grid.Coordinate) {
	p.pos = c
	p.history = append(p.history, c)
	p.moves++
}

// Reset moves the player to c and clears history and move count.
func (p *Player) Reset(c grid.Coordinate) {
	p.pos = c
	p.history = []grid.Coordinate{c}
	p.moves = 0
}
