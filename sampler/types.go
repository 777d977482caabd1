// SPDX-License-Identifier: MIT
// Package: random-walk/sampler

package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/rng"
)

// Counter reports how many remembered traversals an edge has.
// *reinforce.Table satisfies it.
type Counter interface {
	Count(e lattice.Edge) int
}

// Activation decides at which step reinforcement starts to bias moves.
type Activation int

const (
	// ActivateAtOrAfter enables reinforcement once step >= delay.
	ActivateAtOrAfter Activation = iota
	// ActivateAfter enables reinforcement once step > delay.
	ActivateAfter
)

// Active reports whether reinforcement applies at step for the given delay.
func (a Activation) Active(step, delay int) bool {
	if a == ActivateAfter {
		return step > delay
	}
	return step >= delay
}

// String names the activation rule.
func (a Activation) String() string {
	switch a {
	case ActivateAtOrAfter:
		return "at-or-after"
	case ActivateAfter:
		return "after"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Options configures a Sampler.
type Options struct {
	Strength   float64    // weight added per remembered traversal
	Delay      int        // step at which reinforcement may start
	Activation Activation // how Delay is compared with the step index
	Rand       *rand.Rand // random source; nil means rng.Fresh()
}

// Option mutates Options before a Sampler is built.
type Option func(*Options)

// DefaultOptions returns zero strength, zero delay, ActivateAtOrAfter and no
// explicit random source.
func DefaultOptions() Options {
	return Options{Activation: ActivateAtOrAfter}
}

// WithStrength sets the reinforcement strength. Panics on negative or NaN.
func WithStrength(s float64) Option {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("sampler: WithStrength(%v): must be finite and >= 0", s))
	}
	return func(o *Options) {
		o.Strength = s
	}
}

// WithDelay sets the activation delay. Panics on negative values.
func WithDelay(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("sampler: WithDelay(%d): must be >= 0", d))
	}
	return func(o *Options) {
		o.Delay = d
	}
}

// WithActivation selects the activation rule. Panics on unknown rules.
func WithActivation(a Activation) Option {
	if a != ActivateAtOrAfter && a != ActivateAfter {
		panic(fmt.Sprintf("sampler: WithActivation(%d): unknown rule", int(a)))
	}
	return func(o *Options) {
		o.Activation = a
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.Seeded(seed)
	}
}
