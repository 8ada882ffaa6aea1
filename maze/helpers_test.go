package maze_test

// scriptedSource is a RandomSource whose every decision is fixed up front:
// Shuffle leaves the order untouched, IntRange returns k clamped into range,
// and Sample returns the first k entries of picks.
type scriptedSource struct {
	k     int
	picks []int
}

func (s *scriptedSource) Shuffle(int, func(i, j int)) {}

func (s *scriptedSource) IntRange(lo, hi int) int {
	switch {
	case s.k < lo:
		return lo
	case s.k > hi:
		return hi
	default:
		return s.k
	}
}

func (s *scriptedSource) Sample(n, k int) []int {
	if k > len(s.picks) {
		k = len(s.picks)
	}
	return append([]int(nil), s.picks[:k]...)
}

// openCells counts passages in rows.
func openCells(rows [][]int) int {
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c == 0 {
				n++
			}
		}
	}
	return n
}

// openAdjacentPairs counts orthogonally adjacent passage pairs, each once.
func openAdjacentPairs(rows [][]int) int {
	n := 0
	for y, row := range rows {
		for x, c := range row {
			if c != 0 {
				continue
			}
			if x+1 < len(row) && row[x+1] == 0 {
				n++
			}
			if y+1 < len(rows) && rows[y+1][x] == 0 {
				n++
			}
		}
	}
	return n
}
