package pursuit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// Options configures NewGame.
type Options struct {
	EnemySpawn *grid.Coordinate // nil selects (Width-2, 1)
}

// Option mutates Options.
type Option func(*Options)

// WithEnemyAt places the enemy at c instead of the top-right room.
func WithEnemyAt(c grid.Coordinate) Option {
	return func(o *Options) { o.EnemySpawn = &c }
}

// Game is one round of the chase on a fixed grid.
type Game struct {
	ID         uuid.UUID
	g          *grid.Grid
	difficulty Difficulty
	player     *Player
	enemy      *Enemy
	status     Status
}

// NewGame places the player on g's start and the enemy on its spawn.
// Start and exit must be open; the spawn must be open and differ from start.
func NewGame(g *grid.Grid, d Difficulty, opts ...Option) (*Game, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if err := search.ValidateEndpoints(g, g.Start(), g.Exit()); err != nil {
		return nil, err
	}
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	spawn := grid.Coordinate{X: g.Width - 2, Y: 1}
	if o.EnemySpawn != nil {
		spawn = *o.EnemySpawn
	}
	if !g.IsOpen(spawn.X, spawn.Y) || spawn == g.Start() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpawn, spawn)
	}

	return &Game{
		ID:         uuid.New(),
		g:          g,
		difficulty: d,
		player:     NewPlayer(g.Start()),
		enemy:      NewEnemy(spawn),
		status:     Playing,
	}, nil
}

func (gm *Game) Grid() *grid.Grid { return gm.g }

func (gm *Game) Difficulty() Difficulty { return gm.difficulty }

func (gm *Game) Player() *Player { return gm.player }

func (gm *Game) Enemy() *Enemy { return gm.enemy }

func (gm *Game) Status() Status { return gm.status }

// EnemyIn returns how many more player moves trigger the next enemy step.
// The schedule follows the player's move count, so forced enemy moves do
// not shift it.
func (gm *Game) EnemyIn() int {
	every := gm.difficulty.EnemyEvery()
	return every - gm.player.Moves()%every
}

// MovePlayer moves the player one cell in direction d and advances the game.
func (gm *Game) MovePlayer(d grid.Direction) (Status, error) {
	if gm.status != Playing {
		return gm.status, ErrGameOver
	}
	dx, dy := d.Offset()
	target := gm.player.Position().Add(dx, dy)
	if !gm.player.CanMoveTo(gm.g, target) {
		return gm.status, fmt.Errorf("%w: %s to %s", ErrBlocked, d, target)
	}
	gm.player.Move(target)

	switch target {
	case gm.g.Exit():
		gm.status = Won
		return gm.status, nil
	case gm.enemy.Position():
		gm.status = Lost
		return gm.status, nil
	}

	if gm.player.Moves()%gm.difficulty.EnemyEvery() == 0 {
		return gm.chase()
	}
	return gm.status, nil
}

// MoveEnemy takes one enemy step toward the player regardless of schedule.
// The scheduled steps are unaffected.
func (gm *Game) MoveEnemy() (Status, error) {
	if gm.status != Playing {
		return gm.status, ErrGameOver
	}
	return gm.chase()
}

// chase steps the enemy once and ends the game if it lands on the player.
func (gm *Game) chase() (Status, error) {
	if _, err := gm.enemy.Chase(gm.g, gm.player.Position()); err != nil {
		return gm.status, err
	}
	if gm.enemy.Position() == gm.player.Position() {
		gm.status = Lost
	}
	return gm.status, nil
}

// Reset puts both actors back on their starting cells and resumes play.
func (gm *Game) Reset() {
	gm.player.Reset(gm.g.Start())
	gm.enemy.Reset()
	gm.status = Playing
}

// Entry summarizes the finished game for Stats. at is the completion time.
func (gm *Game) Entry(elapsed time.Duration, at time.Time) Entry {
	won := gm.status == Won
	return Entry{
		GameID:     gm.ID,
		At:         at,
		Won:        won,
		Elapsed:    elapsed,
		Steps:      gm.player.Moves(),
		Difficulty: gm.difficulty,
		Score:      Score(elapsed, gm.player.Moves(), gm.difficulty, won),
	}
}
