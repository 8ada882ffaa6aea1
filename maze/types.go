package maze

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Cell is the binary state of one grid cell.
type Cell uint8

const (
	// Passage is an open, walkable cell.
	Passage Cell = 0
	// Wall is a blocked cell.
	Wall Cell = 1
)

// Kind classifies a coordinate by the parity of its components.
type Kind int

const (
	// Room has both coordinates even. Rooms are always open.
	Room Kind = iota
	// WallCandidate has exactly one odd coordinate and sits between two rooms.
	WallCandidate
	// Junction has both coordinates odd and plays no part in connectivity.
	Junction
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Room:
		return "room"
	case WallCandidate:
		return "wall"
	case Junction:
		return "junction"
	default:
		return "unknown"
	}
}
