package grid

import (
	"fmt"
	"strings"
)

// Glyphs used by Parse and String.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphExit  = 'E'
)

// Parse reads the text form of a maze: one line per row, '#' for walls,
// '.' or ' ' for open cells, 'S' and 'E' for open start and exit cells.
// Trailing blank lines and '\r' are ignored. Missing markers fall back to the
// defaults used by New.
// Complexity: O(W×H).
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	g, err := New(w, len(lines))
	if err != nil {
		return nil, err
	}

	var hasStart, hasExit bool
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			switch line[x] {
			case GlyphWall:
				g.cells[y][x] = Wall
			case GlyphOpen, ' ':
				g.cells[y][x] = Open
			case GlyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, GlyphStart, x, y)
				}
				hasStart = true
				g.cells[y][x] = Open
				g.start = Coordinate{X: x, Y: y}
			case GlyphExit:
				if hasExit {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, GlyphExit, x, y)
				}
				hasExit = true
				g.cells[y][x] = Open
				g.exit = Coordinate{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: glyph %q at (%d,%d)", ErrBadCellValue, line[x], x, y)
			}
		}
	}
	return g, nil
}

// String renders g in the form accepted by Parse. Start and exit are drawn
// only when they sit on open cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			switch {
			case g.cells[y][x] == Wall:
				b.WriteByte(GlyphWall)
			case c == g.start:
				b.WriteByte(GlyphStart)
			case c == g.exit:
				b.WriteByte(GlyphExit)
			default:
				b.WriteByte(GlyphOpen)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
