// Package rng provides the single seeded random source shared by every
// generator stage. For a fixed seed and a fixed, ordered sequence of calls
// the outputs are exactly reproducible; any change in call order or call
// count changes all subsequent draws.
package rng

import (
	"math/rand"
	"sort"
)

// Source wraps a seeded math/rand generator. All dataset randomness must be
// drawn from one Source instance so a run replays end-to-end from its seed.
type Source struct {
	seed int64
	rand *rand.Rand
}

// NewSource creates a Source seeded with the given value.
func NewSource(seed int64) *Source {
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// IntRange returns a uniform integer in [lo, hi] inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + s.rand.Intn(hi-lo+1)
}

// FloatRange returns a uniform float in [lo, hi).
func (s *Source) FloatRange(lo, hi float64) float64 {
	return lo + s.rand.Float64()*(hi-lo)
}

// Float returns a uniform float in [0, 1).
func (s *Source) Float() float64 {
	return s.rand.Float64()
}

// Bool performs a Bernoulli draw: true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.rand.Float64() < p
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rand.Intn(n)
}

// Choice returns one item drawn uniformly from items. It panics on an empty
// slice, which in the pipeline means a broken upstream table.
func Choice[T any](s *Source, items []T) T {
	return items[s.rand.Intn(len(items))]
}

// WeightedChoice returns one item drawn according to the parallel weights
// slice. Weights need not sum to 1; they are normalized by their sum. The
// scan returns the first item whose cumulative weight reaches the draw, so
// leading zero-weight items can never be selected.
func WeightedChoice[T any](s *Source, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := s.rand.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return items[i]
		}
	}
	// Floating-point edge: r landed on the total.
	return items[len(items)-1]
}

// Sample returns k distinct items drawn without replacement, via a partial
// Fisher-Yates shuffle of a copy. k is capped at len(items). The returned
// order is the shuffle order, not the source order.
func Sample[T any](s *Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}
	cp := make([]T, len(items))
	copy(cp, items)
	for i := 0; i < k; i++ {
		j := i + s.rand.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:k]
}

// SampleIndices returns k distinct indices in [0, n), sorted ascending so
// callers sampling table rows keep the source row order.
func SampleIndices(s *Source, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	picked := Sample(s, idx, k)
	sort.Ints(picked)
	return picked
}
