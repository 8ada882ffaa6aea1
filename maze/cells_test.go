package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rooms5x3 are the six rooms of a 5×3 grid in row-major order.
var rooms5x3 = []maze.Point{{0, 0}, {2, 0}, {4, 0}, {0, 2}, {2, 2}, {4, 2}}

func TestCellSet_UnionAndConnected(t *testing.T) {
	cs, err := maze.NewCellSet(rooms5x3, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, cs.Count())

	ok, err := cs.Connected(0, 0, 2, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cs.Union(0, 0, 2, 0))
	require.NoError(t, cs.Union(2, 0, 2, 2))
	assert.Equal(t, 4, cs.Count())

	ok, err = cs.Connected(0, 0, 2, 2)
	require.NoError(t, err)
	assert.True(t, ok, "connectivity is transitive")

	ok, err = cs.Connected(2, 2, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "connectivity is symmetric")

	require.NoError(t, cs.Union(2, 2, 0, 0))
	assert.Equal(t, 4, cs.Count(), "joining connected rooms is a no-op")
}

func TestCellSet_UnknownCell(t *testing.T) {
	cs, err := maze.NewCellSet(rooms5x3, 5)
	require.NoError(t, err)

	cases := map[string][2]int{
		"wall candidate": {1, 0},
		"junction":       {1, 1},
		"below grid":     {0, 4},
		"negative y":     {0, -2},
		"aliases (4,0)":  {-1, 1}, // -1 + 1*5 == 4
		"aliases (0,2)":  {10, 0}, // 10 + 0*5 == 10
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := cs.Connected(0, 0, p[0], p[1])
			assert.ErrorIs(t, err, maze.ErrUnknownCell)
			assert.ErrorIs(t, cs.Union(p[0], p[1], 0, 0), maze.ErrUnknownCell)
		})
	}
	assert.Equal(t, 6, cs.Count(), "failed calls leave the groups untouched")
}

func TestNewCellSet_Invalid(t *testing.T) {
	_, err := maze.NewCellSet(rooms5x3, 0)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)

	_, err = maze.NewCellSet([]maze.Point{{0, 0}, {0, 0}}, 3)
	assert.ErrorIs(t, err, maze.ErrUnknownCell)

	_, err = maze.NewCellSet([]maze.Point{{4, 0}}, 3)
	assert.ErrorIs(t, err, maze.ErrUnknownCell)

	cs, err := maze.NewCellSet(nil, 3)
	require.NoError(t, err)
	assert.Zero(t, cs.Count())
}
