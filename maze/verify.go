package maze

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

const methodVerify = "Verify"

// roomSteps are the four directions from a room: the wall one step away and
// the neighboring room two steps away.
var roomSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Verify checks that g is a perfect maze at room level:
//   - every room is open,
//   - exactly rooms-1 wall candidates are open,
//   - every room is reachable from (0,0) through open wall candidates.
//
// With rooms-1 edges and full reachability the room graph is a tree. Junction
// dots are ignored. Failures wrap ErrNotPerfect.
//
// Complexity: O(W·H) time and memory.
func Verify(g *Grid) error {
	if g == nil {
		return fmt.Errorf("%s: nil grid: %w", methodVerify, ErrNotPerfect)
	}

	l := classify(g.width, g.height)
	for _, r := range l.rooms {
		if g.IsWall(r.X, r.Y) {
			return fmt.Errorf("%s: room (%d,%d) is closed: %w", methodVerify, r.X, r.Y, ErrNotPerfect)
		}
	}

	openWalls := 0
	for _, w := range l.walls {
		if !g.IsWall(w.X, w.Y) {
			openWalls++
		}
	}
	if openWalls != len(l.rooms)-1 {
		return fmt.Errorf("%s: %d open walls for %d rooms, want %d: %w",
			methodVerify, openWalls, len(l.rooms), len(l.rooms)-1, ErrNotPerfect)
	}

	if reached := reachableRooms(g); reached != len(l.rooms) {
		return fmt.Errorf("%s: %d of %d rooms reachable: %w", methodVerify, reached, len(l.rooms), ErrNotPerfect)
	}

	return nil
}

// reachableRooms runs a BFS over rooms from (0,0), stepping only through open
// wall candidates, and returns how many rooms it reached.
func reachableRooms(g *Grid) int {
	seen := make([]bool, len(g.cells))
	queue := arrayqueue.New()
	queue.Enqueue(Point{0, 0})
	seen[g.index(0, 0)] = true
	reached := 0

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		r := v.(Point)
		reached++
		for _, d := range roomSteps {
			wx, wy := r.X+d[0], r.Y+d[1]
			if g.IsWall(wx, wy) {
				continue
			}
			nx, ny := r.X+2*d[0], r.Y+2*d[1]
			if !g.InBounds(nx, ny) || seen[g.index(nx, ny)] {
				continue
			}
			seen[g.index(nx, ny)] = true
			queue.Enqueue(Point{nx, ny})
		}
	}

	return reached
}
