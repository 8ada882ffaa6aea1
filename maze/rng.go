package maze

import (
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"
)

// defaultSeed backs generation when no random source is supplied.
const defaultSeed int64 = 1

// RandomSource is every random decision Generate makes. Implementations must
// honor the statistical contracts below; the generator relies on nothing else.
type RandomSource interface {
	// Shuffle permutes n elements uniformly at random through swap.
	Shuffle(n int, swap func(i, j int))
	// IntRange returns a uniform integer in the closed range [lo, hi].
	IntRange(lo, hi int) int
	// Sample returns k distinct indices drawn uniformly from [0, n).
	Sample(n, k int) []int
}

// randSource adapts *rand.Rand to RandomSource. Not goroutine-safe.
type randSource struct {
	r *rand.Rand
}

// NewRandomSource wraps r. A nil r falls back to the default seed.
func NewRandomSource(r *rand.Rand) RandomSource {
	if r == nil {
		r = rand.New(rand.NewSource(defaultSeed))
	}

	return &randSource{r: r}
}

// SeededSource returns a RandomSource with a fresh generator seeded by seed.
// Equal seeds yield equal streams.
func SeededSource(seed int64) RandomSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

// Shuffle is a Fisher–Yates pass from the back.
// Complexity: O(n).
func (s *randSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.r.Intn(i+1))
	}
}

// IntRange returns lo when hi <= lo.
func (s *randSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.r.Intn(hi-lo+1)
}

// Sample uses Floyd's algorithm: one draw per chosen index, no n-sized buffer.
// k is clamped to [0, n].
// Complexity: O(k) time and memory.
func (s *randSource) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}

	chosen := mapset.NewThreadUnsafeSet[int]()
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := s.r.Intn(j + 1)
		if chosen.Contains(t) {
			t = j
		}
		chosen.Add(t)
		out = append(out, t)
	}

	return out
}
