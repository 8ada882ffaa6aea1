// Package maze generates "perfect" mazes: rectangular grids in which every
// room is reachable from every other room by exactly one simple path.
//
// Layout
//
// A width×height grid (both odd, ≥3) is split into three coordinate classes:
//
//	R W R W R        R = room            (x even, y even) – always open
//	W J W J W        W = wall candidate  (exactly one odd coordinate)
//	R W R W R        J = junction dot    (x odd, y odd)   – cosmetic only
//
// Every wall candidate separates exactly two rooms: an odd x joins (x-1,y) and
// (x+1,y), an odd y joins (x,y-1) and (x,y+1).
//
// Algorithm
//
// Generate runs a randomized Kruskal: wall candidates are shuffled uniformly
// and visited in that order; a wall is opened only when the two rooms it
// separates are still in different sets of a disjointset.WeightedQuickUnion,
// and the loop stops as soon as a single set remains. The opened walls form a
// spanning tree over the rooms (rooms-1 of them). A final cosmetic pass opens a
// random subset of junction dots; it never changes which rooms can reach which.
//
// Randomness
//
// All randomness flows through a RandomSource (shuffle, closed-range int,
// sampling without replacement). Pass one with WithRandomSource, WithRand or
// WithSeed; without options a fixed default seed is used, so Generate is
// deterministic unless the caller decides otherwise.
//
// Errors
//
//   - ErrInvalidDimensions: width or height even or below 3.
//   - ErrUnknownCell: a coordinate that is not a registered room was handed to CellSet.
//   - ErrOutOfBounds: Grid.At outside the grid.
//   - ErrNotPerfect: Verify found a cycle, an isolated room or a closed room.
//
// Complexity: Generate is O(W·H) time and memory.
package maze
