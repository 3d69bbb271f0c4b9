// Package rng holds the single pseudo-random source shared by every
// simulation component. Draws happen in call order; nothing else is promised.
package rng

import (
	"math/rand"
	"time"
)

// Source wraps a seeded *rand.Rand. Not safe for concurrent use; the
// simulation only touches it from the tick goroutine.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a source with the given seed. A zero seed uses the current time.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Intn returns a uniform integer in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Perm returns a uniformly random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.rng.Perm(n)
}

// OneIn reports true with probability 1/n by drawing from [0, n) and
// checking for zero.
func (s *Source) OneIn(n int) bool {
	return s.rng.Intn(n) == 0
}
