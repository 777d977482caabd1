package montecarlo

import (
	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/reinforce"
	"github.com/hantao-zhou/random-walk/sampler"
	"github.com/hantao-zhou/random-walk/walk"
)

// Estimate runs trials independent trials of at most steps moves each and
// summarizes their first-return times.
// Complexity: O(trials·steps) calls to the StepFunc.
func Estimate(trials, steps int, newTrial Trial) Summary {
	steps = max(steps, 0)
	sum := Summary{Trials: trials, Steps: steps}
	for t := 0; t < trials; t++ {
		n, returned := firstReturn(newTrial(), steps)
		sum.TotalSteps += int64(n)
		if returned {
			sum.Returned++
		} else {
			sum.Censored++
		}
	}
	sum.Mean = float64(sum.TotalSteps) / float64(trials)
	return sum
}

// firstReturn runs one trial and reports the step of the first return to the
// origin, or (steps, false) when the budget runs out.
func firstReturn(next StepFunc, steps int) (int, bool) {
	for step := 1; step <= steps; step++ {
		if next(step).IsOrigin() {
			return step, true
		}
	}
	return steps, false
}

// SimpleTrials returns a Trial factory for the simple random walk drawing
// from s.
func SimpleTrials(s *sampler.Sampler) Trial {
	return func() StepFunc {
		p := lattice.Origin
		return func(int) lattice.Position {
			p = s.Uniform(p)
			return p
		}
	}
}

// ReinforcedTrials returns a Trial factory for the edge-reinforced walk.
// Each trial gets its own reinforce.Table with the given memory window.
func ReinforcedTrials(s *sampler.Sampler, memory int) Trial {
	return func() StepFunc {
		p := lattice.Origin
		tbl := reinforce.NewTable(memory)
		return func(step int) lattice.Position {
			next, e := s.Step(p, tbl, step)
			tbl.Record(e)
			p = next
			return p
		}
	}
}

// SimpleSummary estimates the simple walk's first-return time.
func SimpleSummary(trials, steps int, opts ...Option) Summary {
	s := sampler.New(sampler.WithRand(resolve(opts)))
	return Estimate(trials, steps, SimpleTrials(s))
}

// ReinforcedSummary estimates the edge-reinforced walk's first-return time.
// Reinforcement activates once the 1-based step exceeds params.Delay.
func ReinforcedSummary(trials, steps int, params walk.Params, opts ...Option) Summary {
	s := sampler.New(
		sampler.WithStrength(params.Strength),
		sampler.WithDelay(params.Delay),
		sampler.WithActivation(sampler.ActivateAfter),
		sampler.WithRand(resolve(opts)),
	)
	return Estimate(trials, steps, ReinforcedTrials(s, params.Memory))
}

// MeanReturnTimeSimple returns the mean first-return time of the simple
// walk, censored at steps.
func MeanReturnTimeSimple(trials, steps int, opts ...Option) float64 {
	return SimpleSummary(trials, steps, opts...).Mean
}

// MeanReturnTimeReinforced returns the mean first-return time of the
// edge-reinforced walk, censored at steps.
func MeanReturnTimeReinforced(trials, steps int, params walk.Params, opts ...Option) float64 {
	return ReinforcedSummary(trials, steps, params, opts...).Mean
}
