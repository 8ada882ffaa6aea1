// Package lvmaze generates perfect mazes: rectangular grids in which every
// room is reachable from every other room by exactly one simple path.
//
// Layout, leaves first:
//
//	disjointset/   fixed-size union-find (union by size + path compression)
//	maze/          grid layout, room-coordinate adapter, randomized Kruskal
//	               generator, perfect-maze verifier
//	cmd/mazegen    CLI printing a generated maze
//
// Quick ASCII example (5×3, 0 = open, 1 = wall):
//
//	0 0 0 0 0
//	0 1 0 1 0
//	0 1 0 1 0
//
// Six rooms at even coordinates joined by five opened walls: a spanning tree.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
