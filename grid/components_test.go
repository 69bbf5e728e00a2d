package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/grid"
)

func TestComponents(t *testing.T) {
	g, err := grid.Parse("#######\n#S.#..#\n###.#E#\n#######\n")
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []grid.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 1}}, comps[0])
	assert.Equal(t, []grid.Coordinate{{X: 4, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 2}}, comps[1])
	assert.Equal(t, []grid.Coordinate{{X: 3, Y: 2}}, comps[2])
}

func TestComponents_Empty(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)
	assert.Empty(t, g.Components())

	g.Carve(grid.Coordinate{X: 2, Y: 1})
	assert.Len(t, g.Components(), 1)
}
