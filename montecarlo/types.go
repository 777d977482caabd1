package montecarlo

import (
	"fmt"
	"math/rand"

	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/rng"
)

// StepFunc advances one trial by a single move. step is 1-based; the
// returned value is the position after the move.
type StepFunc func(step int) lattice.Position

// Trial builds the state of a new, independent trial and returns its
// StepFunc.
type Trial func() StepFunc

// Summary is the aggregate outcome of an Estimate run.
type Summary struct {
	Trials     int     `json:"trials"`      // trials run
	Steps      int     `json:"steps"`       // step budget per trial
	Returned   int     `json:"returned"`    // trials that revisited the origin
	Censored   int     `json:"censored"`    // trials that hit the budget
	TotalSteps int64   `json:"total_steps"` // sum of per-trial contributions
	Mean       float64 `json:"mean"`        // TotalSteps / Trials
}

// ReturnRate is the fraction of trials that came back within the budget.
func (s Summary) ReturnRate() float64 {
	return float64(s.Returned) / float64(s.Trials)
}

// String renders the summary for logs.
func (s Summary) String() string {
	return fmt.Sprintf("mean=%.4f trials=%d steps=%d returned=%d censored=%d",
		s.Mean, s.Trials, s.Steps, s.Returned, s.Censored)
}

// Options configures the random source of an estimator call.
type Options struct {
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithRand draws every trial from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("montecarlo: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed makes the estimate reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.Seeded(seed)
	}
}

func resolve(opts []Option) *rand.Rand {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		return rng.Fresh()
	}
	return o.Rand
}
