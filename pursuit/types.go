package pursuit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGameOver is returned when a move is attempted after the game ended.
	ErrGameOver = errors.New("pursuit: game is over")

	// ErrBlocked is returned for a move onto a wall, off the grid, or not one step away.
	ErrBlocked = errors.New("pursuit: move blocked")

	// ErrInvalidSpawn is returned when the enemy cannot be placed.
	ErrInvalidSpawn = errors.New("pursuit: invalid enemy spawn")

	// ErrUnknownDifficulty is returned by ParseDifficulty.
	ErrUnknownDifficulty = errors.New("pursuit: unknown difficulty")
)

// Difficulty sets how often the enemy moves and how much a win is worth.
type Difficulty int

const (
	VeryEasy Difficulty = iota
	Easy
	Medium
	Hard
)

// Difficulties lists every level from easiest to hardest.
func Difficulties() []Difficulty { return []Difficulty{VeryEasy, Easy, Medium, Hard} }

// EnemyEvery is the number of player moves between enemy moves.
func (d Difficulty) EnemyEvery() int {
	switch d {
	case VeryEasy:
		return 5
	case Medium:
		return 2
	case Hard:
		return 1
	default:
		return 3
	}
}

// Multiplier scales the score of a win.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case VeryEasy:
		return 0.5
	case Medium:
		return 1.5
	case Hard:
		return 2
	default:
		return 1
	}
}

func (d Difficulty) String() string {
	switch d {
	case VeryEasy:
		return "very-easy"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts the String form, ignoring case, spaces, '-' and '_'.
func ParseDifficulty(s string) (Difficulty, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "veryeasy":
		return VeryEasy, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Status is the state of a game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
