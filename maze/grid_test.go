package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_At(t *testing.T) {
	g, err := maze.Generate(7, 5, maze.WithSeed(3))
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 5}} {
		c, err := g.At(p[0], p[1])
		assert.ErrorIs(t, err, maze.ErrOutOfBounds, "%v", p)
		assert.Equal(t, maze.Wall, c)
		assert.True(t, g.IsWall(p[0], p[1]), "outside the grid counts as wall")
	}

	c, err := g.At(6, 4)
	require.NoError(t, err)
	assert.Equal(t, maze.Passage, c, "corner room is always open")
}

func TestGrid_RowsIsCopy(t *testing.T) {
	g, err := maze.Generate(3, 3, maze.WithSeed(1))
	require.NoError(t, err)

	rows := g.Rows()
	rows[0][0] = 1
	c, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, maze.Passage, c, "mutating Rows must not touch the grid")
}

func TestGrid_Rooms(t *testing.T) {
	g, err := maze.Generate(3, 5, maze.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []maze.Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {0, 4}, {2, 4}}, g.Rooms())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		x, y int
		want maze.Kind
	}{
		{0, 0, maze.Room},
		{4, 2, maze.Room},
		{1, 0, maze.WallCandidate},
		{0, 3, maze.WallCandidate},
		{1, 1, maze.Junction},
		{5, 3, maze.Junction},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, maze.Classify(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
	}
	assert.Equal(t, "room", maze.Room.String())
	assert.Equal(t, "wall", maze.WallCandidate.String())
	assert.Equal(t, "junction", maze.Junction.String())
	assert.Equal(t, "unknown", maze.Kind(9).String())
}
