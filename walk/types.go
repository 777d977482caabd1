package walk

import (
	"fmt"
	"math/rand"

	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/rng"
)

// Trajectory is the ordered list of visited sites as parallel coordinate
// slices. len(X) == len(Y) == steps+1 and (X[0], Y[0]) == (0, 0).
type Trajectory struct {
	X []float32 `json:"x"`
	Y []float32 `json:"y"`
}

// newTrajectory allocates room for steps+1 points and records the origin.
func newTrajectory(steps int) Trajectory {
	tr := Trajectory{
		X: make([]float32, 0, steps+1),
		Y: make([]float32, 0, steps+1),
	}
	tr.append(lattice.Origin)
	return tr
}

func (tr *Trajectory) append(p lattice.Position) {
	tr.X = append(tr.X, float32(p.X))
	tr.Y = append(tr.Y, float32(p.Y))
}

// Len returns the number of points.
func (tr Trajectory) Len() int {
	return len(tr.X)
}

// Points converts the trajectory back to lattice positions.
func (tr Trajectory) Points() []lattice.Position {
	pts := make([]lattice.Position, len(tr.X))
	for i := range tr.X {
		pts[i] = lattice.Position{X: int(tr.X[i]), Y: int(tr.Y[i])}
	}
	return pts
}

// Params holds the edge-reinforcement parameters shared by walks and
// estimators.
//
//	Strength – weight added per remembered traversal (>= 0).
//	Delay    – step at which reinforcement starts (>= 0).
//	Memory   – sliding window of remembered traversals; 0 = unbounded.
type Params struct {
	Strength float64 `json:"strength" yaml:"strength"`
	Delay    int     `json:"delay" yaml:"delay"`
	Memory   int     `json:"memory" yaml:"memory"`
}

// String renders the parameters for logs.
func (p Params) String() string {
	return fmt.Sprintf("strength=%g delay=%d memory=%d", p.Strength, p.Delay, p.Memory)
}

// Options configures the random source of a walk call.
type Options struct {
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithRand uses r for every draw in the call. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walk: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed makes the call reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.Seeded(seed)
	}
}

// resolve applies opts and fills in a fresh source when none was given.
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
