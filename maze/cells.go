package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/disjointset"
)

const (
	methodNewCellSet = "NewCellSet"
	methodConnected  = "CellSet.Connected"
	methodUnion      = "CellSet.Union"
)

// CellSet tracks room connectivity by grid coordinate. It maps each room's
// raw grid index (x + y*width) to a dense element id of a union-find sized to
// the room count. The mapping is fixed at construction.
type CellSet struct {
	width int
	ids   map[int]int
	uf    *disjointset.WeightedQuickUnion
}

// NewCellSet registers rooms in order, giving the i-th room element id i.
// Returns ErrInvalidDimensions if width < 1, ErrUnknownCell if a room lies
// outside [0,width) horizontally, has a negative y, or is listed twice.
func NewCellSet(rooms []Point, width int) (*CellSet, error) {
	if width < 1 {
		return nil, fmt.Errorf("%s: width=%d: %w", methodNewCellSet, width, ErrInvalidDimensions)
	}

	ids := make(map[int]int, len(rooms))
	for i, p := range rooms {
		if p.X < 0 || p.X >= width || p.Y < 0 {
			return nil, fmt.Errorf("%s: room (%d,%d) outside width %d: %w",
				methodNewCellSet, p.X, p.Y, width, ErrUnknownCell)
		}
		idx := p.X + p.Y*width
		if _, dup := ids[idx]; dup {
			return nil, fmt.Errorf("%s: room (%d,%d) listed twice: %w",
				methodNewCellSet, p.X, p.Y, ErrUnknownCell)
		}
		ids[idx] = i
	}

	uf, err := disjointset.New(len(rooms))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewCellSet, err)
	}

	return &CellSet{width: width, ids: ids, uf: uf}, nil
}

// Connected reports whether rooms (x1,y1) and (x2,y2) are already joined.
func (c *CellSet) Connected(x1, y1, x2, y2 int) (bool, error) {
	p, err := c.id(methodConnected, x1, y1)
	if err != nil {
		return false, err
	}
	q, err := c.id(methodConnected, x2, y2)
	if err != nil {
		return false, err
	}

	return c.uf.Connected(p, q)
}

// Union joins rooms (x1,y1) and (x2,y2). Joining already connected rooms is a no-op.
func (c *CellSet) Union(x1, y1, x2, y2 int) error {
	p, err := c.id(methodUnion, x1, y1)
	if err != nil {
		return err
	}
	q, err := c.id(methodUnion, x2, y2)
	if err != nil {
		return err
	}

	return c.uf.Union(p, q)
}

// Count returns the number of disjoint room groups.
func (c *CellSet) Count() int { return c.uf.Count() }

// id checks the row range before indexing: x + y*width aliases for x outside [0,width).
func (c *CellSet) id(method string, x, y int) (int, error) {
	if x >= 0 && x < c.width && y >= 0 {
		if id, ok := c.ids[x+y*c.width]; ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%s: (%d,%d): %w", method, x, y, ErrUnknownCell)
}
