package disjointset

// UnionFind is the read/merge contract shared by spanning-tree builders.
// Implementations are additive only: there is no way to split a set.
type UnionFind interface {
	// Find returns the representative (root) of p's set.
	Find(p int) (int, error)
	// Union merges the sets containing p and q; it is a no-op if they are
	// already connected.
	Union(p, q int) error
	// Connected reports whether p and q belong to the same set.
	Connected(p, q int) (bool, error)
	// Count returns the number of disjoint sets remaining.
	Count() int
}

// compile-time check
var _ UnionFind = (*WeightedQuickUnion)(nil)
