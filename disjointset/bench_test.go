package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/disjointset"
)

// BenchmarkUnionFind_Random100k measures 100k random unions followed by a
// full sweep of Find on a forest of 100k elements.
func BenchmarkUnionFind_Random100k(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, _ := disjointset.New(n)
		for _, p := range pairs {
			_ = u.Union(p[0], p[1])
		}
		for p := 0; p < n; p++ {
			_, _ = u.Find(p)
		}
	}
}
