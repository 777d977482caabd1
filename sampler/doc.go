// SPDX-License-Identifier: MIT
// Package: random-walk/sampler
//
// Package sampler picks the next lattice move of a walk, either uniformly or
// weighted by edge reinforcement.
//
// Algorithm (Step):
//
//  1. Enumerate the neighbours of p in lattice.Directions order (+x, −x, +y, −y).
//  2. For each neighbour n, look up c = Count(CanonicalEdge(p, n)).
//  3. Weight w = 1 while reinforcement is inactive, else w = 1 + strength·c.
//  4. Draw r uniformly in [0, Σw).
//  5. Return the first neighbour whose cumulative weight is >= r.
//
// Activation:
//
//   - ActivateAtOrAfter: reinforcement applies once step >= delay. Trajectory
//     generators count steps from 0 and use this rule.
//   - ActivateAfter: reinforcement applies once step > delay. Return-time
//     estimators count steps from 1 and use this rule.
//
// The two rules are deliberately distinct; callers pick the one matching
// their step numbering.
//
// Options:
//
//   - WithStrength(s): reinforcement strength, s >= 0 (default 0).
//   - WithDelay(d): activation delay, d >= 0 (default 0).
//   - WithActivation(a): activation rule (default ActivateAtOrAfter).
//   - WithRand(r) / WithSeed(seed): random source (default rng.Fresh()).
//
// Option constructors panic on meaningless values; Step never panics.
//
// Complexity: Step is O(1) with four table lookups.
package sampler
