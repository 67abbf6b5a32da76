// Package rng provides the default Rng collaborator, backed by math/rand.
package rng

import (
	"math/rand"

	"kmeanstree/kmeans"
)

// Source is a math/rand-backed Rng collaborator. It is not safe for
// concurrent use, matching the tree's own single-goroutine contract.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically. Two Sources built with the
// same seed reproduce the same seeding/refinement decisions.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// RandInt returns a pseudo-random integer in [0, n).
func (s *Source) RandInt(n int) int { return s.r.Intn(n) }

// RandDouble returns a pseudo-random float in [0, x).
func (s *Source) RandDouble(x float64) float64 { return s.r.Float64() * x }

// UniqueInts returns a draw that yields each of [0, n) exactly once, in
// random order, then -1 forever after.
func (s *Source) UniqueInts(n int) kmeans.UniqueDraw {
	return &Permutation{order: s.r.Perm(n)}
}

// Permutation is a one-shot, order-randomized walk over [0, n).
type Permutation struct {
	order []int
	pos   int
}

// Next returns the next value in the permutation, or -1 once exhausted.
func (p *Permutation) Next() int {
	if p.pos >= len(p.order) {
		return -1
	}
	v := p.order[p.pos]
	p.pos++
	return v
}
