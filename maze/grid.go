package maze

import (
	"fmt"
	"strings"
)

const methodAt = "Grid.At"

// Grid is a finished maze. It is immutable once Generate returns it.
// Cells are stored row-major: index x + y*width.
type Grid struct {
	width, height int
	cells         []Cell
	carved        int // wall candidates opened by the carving loop
}

// newGrid allocates a width×height grid with every cell a wall.
func newGrid(width, height int) *Grid {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Wall
	}

	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CarvedWalls returns how many wall candidates the carving loop opened.
// For a completed maze this is len(Rooms())-1.
func (g *Grid) CarvedWalls() int { return g.carved }

// InBounds reports whether (x,y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x,y): Passage (0) or Wall (1).
// Returns ErrOutOfBounds outside the grid.
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Wall, fmt.Errorf("%s: (%d,%d) outside %dx%d: %w", methodAt, x, y, g.width, g.height, ErrOutOfBounds)
	}

	return g.cells[g.index(x, y)], nil
}

// IsWall reports whether (x,y) is blocked. Everything outside the grid is.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}

	return g.cells[g.index(x, y)] == Wall
}

// Rooms lists every room coordinate in row-major order.
func (g *Grid) Rooms() []Point {
	return classify(g.width, g.height).rooms
}

// Rows returns a deep copy of the grid as rows of 0/1, rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		for x := range rows[y] {
			rows[y][x] = int(g.cells[g.index(x, y)])
		}
	}

	return rows
}

// String renders one line per row, cells as 0 and 1 digits separated by spaces.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * g.width * 2)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(g.cells[g.index(x, y)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Grid) index(x, y int) int {
	return x + y*g.width
}

func (g *Grid) open(p Point) {
	g.cells[g.index(p.X, p.Y)] = Passage
}
