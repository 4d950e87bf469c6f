package random

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness capability used by question selection,
// follow-up sampling and skill-score jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic PCG-backed source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFromTime returns a source seeded from the wall clock.
// Used when no seed is configured.
func NewFromTime() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Between returns a uniform integer in [lo, hi] inclusive.
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
