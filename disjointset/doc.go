// Package disjointset provides a fixed-size disjoint-set (union-find) forest
// over integer elements 0..n-1.
//
// What & Why
//
//   - A disjoint-set tracks a partition of elements into non-overlapping sets
//     and answers "are p and q in the same set?" in near-constant amortized time.
//   - It is the engine behind Kruskal-style spanning-tree builders: an edge is
//     accepted only when its endpoints still live in different sets, so no cycle
//     can ever be formed.
//
// Implementation
//
//   - WeightedQuickUnion: union by size (the smaller tree is attached under the
//     larger root) plus two-pass path compression in Find.
//   - Storage is two index-addressed slices (parent, size) sized once at New;
//     no maps, no pointers, no growth.
//   - The structure is additive only: sets can be merged, never split.
//
// Complexity
//
//   - New: O(n) time and memory.
//   - Find / Union / Connected: O(α(n)) amortized, α = inverse Ackermann.
//   - Count / Len: O(1).
//
// Errors
//
//   - ErrInvalidSize: New called with n < 0.
//   - ErrInvalidElement: an element id outside [0, n).
//
// The structure is not goroutine-safe; it is meant to live inside one
// synchronous algorithm run.
package disjointset
