package maze

import "math/rand"

// Option customizes Generate. Options apply in order; later ones win.
type Option func(*config)

// config is resolved once per Generate call.
type config struct {
	src      RandomSource
	decorate bool
}

func newConfig(opts ...Option) config {
	cfg := config{decorate: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = SeededSource(defaultSeed)
	}

	return cfg
}

// WithRandomSource injects the RandomSource driving the shuffle and the
// junction pass. Panics on nil.
func WithRandomSource(src RandomSource) Option {
	if src == nil {
		panic("maze: WithRandomSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithRand uses r for every random decision. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.src = NewRandomSource(r)
	}
}

// WithSeed seeds a fresh generator; the same seed and dimensions always give
// the same grid.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = SeededSource(seed)
	}
}

// WithoutDecoration skips the junction pass, leaving every junction dot a wall.
// The open cells then form a tree at cell level too.
func WithoutDecoration() Option {
	return func(c *config) {
		c.decorate = false
	}
}
