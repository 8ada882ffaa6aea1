package maze

// Classify returns the Kind of (x,y) from coordinate parity alone.
// Bounds are not checked.
func Classify(x, y int) Kind {
	oddX, oddY := x&1 == 1, y&1 == 1
	switch {
	case oddX && oddY:
		return Junction
	case oddX || oddY:
		return WallCandidate
	default:
		return Room
	}
}

// separates returns the two rooms a wall candidate lies between: horizontal
// neighbors for an odd x, vertical neighbors for an odd y.
func separates(w Point) (Point, Point) {
	if w.X&1 == 1 {
		return Point{w.X - 1, w.Y}, Point{w.X + 1, w.Y}
	}

	return Point{w.X, w.Y - 1}, Point{w.X, w.Y + 1}
}

// layout holds the three coordinate classes of a grid, each in row-major order.
type layout struct {
	rooms     []Point
	walls     []Point
	junctions []Point
}

// classify partitions every coordinate of a width×height grid.
// Complexity: O(W·H).
func classify(width, height int) layout {
	roomsX, roomsY := (width+1)/2, (height+1)/2
	l := layout{
		rooms:     make([]Point, 0, roomsX*roomsY),
		walls:     make([]Point, 0, (roomsX-1)*roomsY+roomsX*(roomsY-1)),
		junctions: make([]Point, 0, (roomsX-1)*(roomsY-1)),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{x, y}
			switch Classify(x, y) {
			case Room:
				l.rooms = append(l.rooms, p)
			case WallCandidate:
				l.walls = append(l.walls, p)
			case Junction:
				l.junctions = append(l.junctions, p)
			}
		}
	}

	return l
}
