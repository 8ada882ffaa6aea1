package disjointset

import "fmt"

// Method tags used to give wrapped errors a stable prefix.
const (
	methodNew       = "New"
	methodFind      = "Find"
	methodUnion     = "Union"
	methodConnected = "Connected"
	methodSizeOf    = "SizeOf"
)

// WeightedQuickUnion is a union-find forest with union by size and path
// compression.
//
// Invariants:
//   - parent[i] == i iff i is a root.
//   - size[r] is the number of elements in the tree rooted at r; entries of
//     non-root elements are stale and never read.
//   - count equals the number of roots and only decreases, by exactly one per
//     merging Union.
type WeightedQuickUnion struct {
	parent []int
	size   []int
	count  int
}

// New returns a forest of n singleton sets (each element its own root with
// size 1), so Count() == n.
// Returns ErrInvalidSize if n < 0. n == 0 is a valid, empty forest.
//
// Complexity: O(n) time and memory.
func New(n int) (*WeightedQuickUnion, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidSize)
	}

	u := &WeightedQuickUnion{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		u.parent[i] = i
		u.size[i] = 1
	}

	return u, nil
}

// Len returns the number of elements the forest was created with.
func (u *WeightedQuickUnion) Len() int { return len(u.parent) }

// Count returns the number of disjoint sets remaining.
func (u *WeightedQuickUnion) Count() int { return u.count }

// Find returns the root of p's set.
//
// Two passes: the first walks from p to the root without touching anything,
// the second walks the same path again and repoints every visited node
// directly at the root. After Find(p), p's parent is its root.
//
// Complexity: O(α(n)) amortized.
func (u *WeightedQuickUnion) Find(p int) (int, error) {
	if err := u.validate(methodFind, p); err != nil {
		return 0, err
	}

	return u.find(p), nil
}

// Union merges the sets of p and q.
//
// Already connected: nothing changes, Count() included. Otherwise the root of
// the smaller tree is attached under the root of the larger one; on equal
// sizes p's root goes under q's root. The surviving root's size becomes the
// sum of both and Count() drops by one.
//
// Complexity: O(α(n)) amortized.
func (u *WeightedQuickUnion) Union(p, q int) error {
	if err := u.validate(methodUnion, p); err != nil {
		return err
	}
	if err := u.validate(methodUnion, q); err != nil {
		return err
	}

	rootP, rootQ := u.find(p), u.find(q)
	if rootP == rootQ {
		return nil
	}

	if u.size[rootP] > u.size[rootQ] {
		u.parent[rootQ] = rootP
		u.size[rootP] += u.size[rootQ]
	} else {
		u.parent[rootP] = rootQ
		u.size[rootQ] += u.size[rootP]
	}
	u.count--

	return nil
}

// Connected reports whether p and q share a root.
func (u *WeightedQuickUnion) Connected(p, q int) (bool, error) {
	if err := u.validate(methodConnected, p); err != nil {
		return false, err
	}
	if err := u.validate(methodConnected, q); err != nil {
		return false, err
	}

	return u.find(p) == u.find(q), nil
}

// SizeOf returns the number of elements in p's set.
func (u *WeightedQuickUnion) SizeOf(p int) (int, error) {
	if err := u.validate(methodSizeOf, p); err != nil {
		return 0, err
	}

	return u.size[u.find(p)], nil
}

// find assumes p is in range.
func (u *WeightedQuickUnion) find(p int) int {
	root := p
	for root != u.parent[root] {
		root = u.parent[root]
	}
	for p != root {
		next := u.parent[p]
		u.parent[p] = root
		p = next
	}

	return root
}

func (u *WeightedQuickUnion) validate(method string, p int) error {
	if p < 0 || p >= len(u.parent) {
		return fmt.Errorf("%s: p=%d not in [0,%d): %w", method, p, len(u.parent), ErrInvalidElement)
	}

	return nil
}
