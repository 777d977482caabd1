package walk

import (
	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/reinforce"
	"github.com/hantao-zhou/random-walk/sampler"
)

// Simple returns a simple random walk of the given number of steps.
// Complexity: O(steps).
func Simple(steps int, opts ...Option) Trajectory {
	steps = max(steps, 0)
	s := sampler.New(sampler.WithRand(resolve(opts)))

	tr := newTrajectory(steps)
	p := lattice.Origin
	for i := 0; i < steps; i++ {
		p = s.Uniform(p)
		tr.append(p)
	}
	return tr
}

// Reinforced returns an edge-reinforced walk. The reinforcement table is
// created for this call only and discarded on return.
// Preconditions: Strength >= 0, Delay >= 0, Memory >= 0.
// Complexity: O(steps).
func Reinforced(steps int, params Params, opts ...Option) Trajectory {
	steps = max(steps, 0)
	s := sampler.New(
		sampler.WithStrength(params.Strength),
		sampler.WithDelay(params.Delay),
		sampler.WithActivation(sampler.ActivateAtOrAfter),
		sampler.WithRand(resolve(opts)),
	)
	tbl := reinforce.NewTable(params.Memory)

	tr := newTrajectory(steps)
	p := lattice.Origin
	for i := 0; i < steps; i++ {
		next, e := s.Step(p, tbl, i)
		tbl.Record(e)
		tr.append(next)
		p = next
	}
	return tr
}
