package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a width or height that is even or below 3.
	ErrInvalidDimensions = errors.New("maze: invalid maze dimensions")
	// ErrUnknownCell indicates a coordinate that is not a registered maze cell.
	ErrUnknownCell = errors.New("maze: coordinate is not a registered maze cell")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrNotPerfect indicates the rooms and open walls of a grid do not form a spanning tree.
	ErrNotPerfect = errors.New("maze: grid is not a perfect maze")
)
