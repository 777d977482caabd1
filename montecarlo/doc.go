// Package montecarlo estimates the mean first-return time to the origin of
// lattice walks by repeated independent trials.
//
// Each trial starts a fresh walk at the origin and runs for at most `steps`
// moves, numbered 1..steps. The trial contributes the step at which the walk
// first revisits (0,0), or `steps` if it never does (censored at the budget,
// not discarded). The estimate is the sum of contributions divided by
// `trials`.
//
// Both estimators share one loop, Estimate, which is handed a Trial
// factory. A Trial builds the per-trial state (position, and for the
// reinforced walk a fresh reinforce.Table) and returns the StepFunc that
// advances it, so nothing leaks from one trial into the next.
//
// Activation: the reinforced estimator numbers steps from 1 and enables
// reinforcement once step > Delay (sampler.ActivateAfter). This is one step
// later than walk.Reinforced, which uses step >= Delay with 0-based steps.
//
// Preconditions: trials > 0. With trials == 0 the mean is NaN.
//
// Complexity: O(trials·steps) time, O(min(Memory, steps)) memory per trial.
package montecarlo
