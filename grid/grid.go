package grid

import "fmt"

// Grid is a rectangular maze. Width and Height are fixed at construction.
// cells[y][x] holds the state of column x in row y.
type Grid struct {
	Width, Height int
	cells         [][]Cell
	start, exit   Coordinate
}

// New returns a width×height grid with every cell set to Wall.
// Start defaults to (1,1) and Exit to (width-2,height-2), clamped into bounds
// for degenerate sizes.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Wall
		}
		cells[y] = row
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		start:  defaultStart(width, height),
		exit:   defaultExit(width, height),
	}, nil
}

// FromRows builds a Grid from a 0/1 matrix (0 = open, 1 = wall).
// The input is deep-copied. Returns ErrEmptyGrid, ErrNonRectangular or
// ErrBadCellValue for malformed input; all wrap ErrInvalidGrid.
// Complexity: O(W×H).
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			// compare the raw int; Cell is a byte and would wrap
			switch v {
			case int(Open), int(Wall):
				g.cells[y][x] = Cell(v)
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCellValue, v, x, y)
			}
		}
	}
	return g, nil
}

func defaultStart(w, h int) Coordinate {
	return Coordinate{X: min(1, w-1), Y: min(1, h-1)}
}

func defaultExit(w, h int) Coordinate {
	return Coordinate{X: max(w-2, 0), Y: max(h-2, 0)}
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsOpen reports whether (x,y) is in bounds and open.
// Complexity: O(1).
func (g *Grid) IsOpen(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Open
}

// IsWall reports whether (x,y) is a wall. Out-of-bounds coordinates are walls.
// Complexity: O(1).
func (g *Grid) IsWall(x, y int) bool {
	return !g.IsOpen(x, y)
}

// Cell returns the state at (x,y); out-of-bounds coordinates read as Wall.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y][x]
}

// Neighbors returns the open cells one step from c, tested Up, Right, Down, Left.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.IsOpen(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// SetCell sets (x,y) to v. Out-of-bounds writes are ignored and reported as false.
func (g *Grid) SetCell(x, y int, v Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y][x] = v
	return true
}

// Carve opens the cell at c.
func (g *Grid) Carve(c Coordinate) bool {
	return g.SetCell(c.X, c.Y, Open)
}

// Start returns the designated start cell.
func (g *Grid) Start() Coordinate { return g.start }

// Exit returns the designated exit cell.
func (g *Grid) Exit() Coordinate { return g.exit }

// SetStart moves the start marker. The cell state is not changed.
func (g *Grid) SetStart(c Coordinate) { g.start = c }

// SetExit moves the exit marker. The cell state is not changed.
func (g *Grid) SetExit(c Coordinate) { g.exit = c }

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = make([]Cell, g.Width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells, start: g.start, exit: g.exit}
}

// Rows returns a 0/1 copy of the cells, row by row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		for x, c := range g.cells[y] {
			rows[y][x] = int(c)
		}
	}
	return rows
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Open {
				n++
			}
		}
	}
	return n
}

// Equal reports whether g and o have identical dimensions, cells and markers.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height || g.start != o.start || g.exit != o.exit {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
