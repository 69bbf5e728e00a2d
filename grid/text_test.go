package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/grid"
)

const corridorMaze = `#####
#S..#
###.#
#E..#
#####
`

// TestParse_RoundTrip parses the text form and renders it back unchanged.
func TestParse_RoundTrip(t *testing.T) {
	g, err := grid.Parse(corridorMaze)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 5, g.Height)
	assert.Equal(t, grid.Coordinate{X: 1, Y: 1}, g.Start())
	assert.Equal(t, grid.Coordinate{X: 1, Y: 3}, g.Exit())
	assert.True(t, g.IsOpen(3, 2))
	assert.Equal(t, 7, g.OpenCount())
	assert.Equal(t, corridorMaze, g.String())
}

// TestParse_Errors rejects ragged rows, unknown glyphs and repeated markers.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"Ragged", "###\n##\n", grid.ErrNonRectangular},
		{"Glyph", "#x#\n", grid.ErrBadCellValue},
		{"TwoStarts", "S.S\n", grid.ErrDuplicateMarker},
		{"TwoExits", "E#E\n", grid.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.in)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, grid.ErrInvalidGrid)
		})
	}
}

// TestParse_DefaultsAndCRLF accepts Windows line endings and missing markers.
func TestParse_DefaultsAndCRLF(t *testing.T) {
	g, err := grid.Parse("#####\r\n#...#\r\n#####\r\n")
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{X: 1, Y: 1}, g.Start())
	assert.Equal(t, grid.Coordinate{X: 3, Y: 1}, g.Exit())
}
