package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and decoding.
var (
	// ErrInvalidGrid is the umbrella error for malformed grid input.
	ErrInvalidGrid = errors.New("grid: invalid grid")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)

	// ErrBadCellValue indicates a cell that is neither open nor wall.
	ErrBadCellValue = fmt.Errorf("%w: unknown cell value", ErrInvalidGrid)

	// ErrDuplicateMarker indicates more than one start or exit marker in text input.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate start or exit marker", ErrInvalidGrid)

	// ErrDecode indicates binary input that could not be decoded.
	ErrDecode = errors.New("grid: cannot decode grid")
)

// Cell is the state of a single maze cell.
type Cell uint8

const (
	// Open is a passable cell. Its numeric value matches the 0/1 matrix form.
	Open Cell = 0
	// Wall is an impassable cell.
	Wall Cell = 1
)

// String returns "open" or "wall".
func (c Cell) String() string {
	if c == Open {
		return "open"
	}
	return "wall"
}

// Coordinate addresses a cell: X is the column, Y is the row.
type Coordinate struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// Up decreases Y.
	Up Direction = iota
	// Right increases X.
	Right
	// Down increases Y.
	Down
	// Left decreases X.
	Left
)

// neighborOffsets lists (dx,dy) in Up, Right, Down, Left order, indexed by Direction.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the (dx, dy) step for d.
func (d Direction) Offset() (dx, dy int) {
	o := neighborOffsets[d&3]
	return o[0], o[1]
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Directions returns the four directions in neighbor-expansion order.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}
