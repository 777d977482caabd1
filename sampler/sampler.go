// SPDX-License-Identifier: MIT
// Package: random-walk/sampler

package sampler

import (
	"math/rand"

	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/rng"
)

// Sampler draws lattice moves. It is not safe for concurrent use; each walk
// or trial loop owns one.
type Sampler struct {
	strength   float64
	delay      int
	activation Activation
	rng        *rand.Rand
}

// New builds a Sampler from DefaultOptions with opts applied in order.
func New(opts ...Option) *Sampler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := o.Rand
	if r == nil {
		r = rng.Fresh()
	}
	return &Sampler{
		strength:   o.Strength,
		delay:      o.Delay,
		activation: o.Activation,
		rng:        r,
	}
}

// Active reports whether reinforcement biases the move taken at step.
func (s *Sampler) Active(step int) bool {
	return s.activation.Active(step, s.delay)
}

// Weights returns the sampling weight of each move from p, in
// lattice.Directions order.
func (s *Sampler) Weights(p lattice.Position, c Counter, step int) [lattice.NumDirections]float64 {
	var w [lattice.NumDirections]float64
	active := s.Active(step)
	for i, n := range lattice.Neighbors(p) {
		w[i] = 1.0
		if active {
			w[i] += s.strength * float64(c.Count(lattice.CanonicalEdge(p, n)))
		}
	}
	return w
}

// Choose returns the first index whose cumulative weight reaches r.
// It returns 0 if none does, which cannot happen for r in [0, Σw).
func Choose(w [lattice.NumDirections]float64, r float64) int {
	acc := 0.0
	for i, wi := range w {
		acc += wi
		if r <= acc {
			return i
		}
	}
	return 0
}

// Step samples one weighted move from p and returns the new position along
// with the canonical edge traversed. The caller records the edge.
func (s *Sampler) Step(p lattice.Position, c Counter, step int) (lattice.Position, lattice.Edge) {
	w := s.Weights(p, c, step)
	total := 0.0
	for _, wi := range w {
		total += wi
	}
	i := Choose(w, s.rng.Float64()*total)
	next := lattice.Move(p, lattice.Directions[i])
	return next, lattice.CanonicalEdge(p, next)
}

// Uniform samples one of the four moves with equal probability.
func (s *Sampler) Uniform(p lattice.Position) lattice.Position {
	return lattice.Move(p, lattice.Directions[s.rng.Intn(lattice.NumDirections)])
}
