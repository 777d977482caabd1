// Package walk generates full trajectories of random walks on the square
// lattice, starting at the origin.
//
//   - Simple: each step picks one of the four neighbours uniformly.
//   - Reinforced: each step is drawn by a sampler.Sampler against a fresh
//     reinforce.Table, so recently traversed edges become more likely
//     (edge-reinforced walk).
//
// Both return a Trajectory of steps+1 points as two float32 coordinate slices,
// the shape a plotting front end consumes directly. Negative step counts are
// a caller error; they are treated as zero and produce the single point (0,0).
//
// Step numbering: Reinforced counts steps from 0 and enables reinforcement
// once step >= Delay (sampler.ActivateAtOrAfter).
//
// Randomness: each call owns its own source. Pass WithSeed or WithRand for
// reproducible trajectories; the default is fresh OS entropy per call.
//
// Complexity: O(steps) time; O(steps) memory for the trajectory plus
// O(min(Memory, steps)) for the reinforcement history.
package walk
