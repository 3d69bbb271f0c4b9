package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPermIsBijection(t *testing.T) {
	s := New(7)
	for round := 0; round < 20; round++ {
		p := s.Perm(9)
		seen := make(map[int]bool, len(p))
		for _, v := range p {
			assert.True(t, v >= 0 && v < 9)
			seen[v] = true
		}
		assert.Len(t, seen, 9)
	}
}

func TestZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, New(0).Seed())
}

func TestOneInHitsAtExpectedRate(t *testing.T) {
	s := New(99)
	const draws = 70000
	hits := 0
	for i := 0; i < draws; i++ {
		if s.OneIn(7) {
			hits++
		}
	}
	assert.InDelta(t, 1.0/7, float64(hits)/draws, 0.01)
}

func TestOneInOfOneAlwaysHits(t *testing.T) {
	s := New(3)
	for i := 0; i < 100; i++ {
		assert.True(t, s.OneIn(1))
	}
}
