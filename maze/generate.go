package maze

import "fmt"

const (
	methodGenerate = "Generate"
	minSide        = 3
)

// Generate builds a perfect maze of width×height cells.
//
// Contract:
//   - width and height must both be odd and ≥ 3, else ErrInvalidDimensions is
//     returned before anything is allocated.
//   - Rooms are always open. The opened wall candidates form a spanning tree
//     over the rooms: exactly rooms-1 of them, one simple path between any two
//     rooms.
//   - Junction dots are opened at random afterwards (unless WithoutDecoration);
//     this never changes room-to-room reachability.
//   - Same options and dimensions with an equally seeded source give an
//     identical grid.
//
// Steps:
//  1. Allocate an all-wall grid, classify coordinates, open every room.
//  2. Build a CellSet over the rooms.
//  3. Shuffle the wall candidates uniformly.
//  4. Visit them in shuffled order until one room group remains; open a wall
//     only if the two rooms it separates are not yet connected, then join them.
//  5. Pick k uniformly in [0, junctions] and open k distinct junction dots.
//
// Complexity: O(W·H) time and memory.
func Generate(width, height int, opts ...Option) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	g := newGrid(width, height)
	l := classify(width, height)
	for _, r := range l.rooms {
		g.open(r)
	}

	rooms, err := NewCellSet(l.rooms, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	walls := l.walls
	cfg.src.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	for _, w := range walls {
		if rooms.Count() == 1 {
			break
		}
		a, b := separates(w)
		joined, err := rooms.Connected(a.X, a.Y, b.X, b.Y)
		if err != nil {
			return nil, fmt.Errorf("%s: wall (%d,%d): %w", methodGenerate, w.X, w.Y, err)
		}
		if joined {
			continue // opening it would close a loop
		}
		g.open(w)
		g.carved++
		if err = rooms.Union(a.X, a.Y, b.X, b.Y); err != nil {
			return nil, fmt.Errorf("%s: wall (%d,%d): %w", methodGenerate, w.X, w.Y, err)
		}
	}

	if cfg.decorate {
		decorate(g, l.junctions, cfg.src)
	}

	return g, nil
}

// decorate opens a uniformly sized random subset of junction dots.
func decorate(g *Grid, junctions []Point, src RandomSource) {
	n := len(junctions)
	k := src.IntRange(0, n)
	for _, i := range src.Sample(n, k) {
		if i < 0 || i >= n {
			continue
		}
		g.open(junctions[i])
	}
}

func validateDimensions(width, height int) error {
	if width < minSide || width%2 == 0 {
		return fmt.Errorf("%s: width=%d must be odd and >= %d: %w", methodGenerate, width, minSide, ErrInvalidDimensions)
	}
	if height < minSide || height%2 == 0 {
		return fmt.Errorf("%s: height=%d must be odd and >= %d: %w", methodGenerate, height, minSide, ErrInvalidDimensions)
	}

	return nil
}
