// SPDX-License-Identifier: MIT
// Package: random-walk/reinforce
//
// Package reinforce keeps per-edge traversal counts for an edge-reinforced
// walk, optionally forgetting old traversals through a sliding window.
//
// Model:
//
//   - counts: lattice.Edge -> number of remembered traversals.
//   - history: the remembered traversals, oldest first.
//   - limit M: 0 means unbounded memory; M > 0 keeps only the last M
//     traversals, and evicting one decrements its edge count (floor 0).
//
// Invariants:
//
//   - Count(e) >= 0 for every edge.
//   - With M > 0: Len() <= M and Total() <= M.
//   - With M = 0: Count(e) equals the number of times e was recorded.
//
// Ownership:
//
//   - A Table belongs to exactly one walk or Monte Carlo trial. It is not
//     safe for concurrent use and is never shared between trials.
//
// Complexity:
//
//   - Record, Count: O(1) amortized.
//   - Memory: O(min(M, steps)) for the history and O(distinct edges) for counts.
package reinforce
