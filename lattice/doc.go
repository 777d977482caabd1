// Package lattice models the 2D square lattice Z² that every walk in this
// module lives on.
//
// What:
//
//   - Position is a lattice site (X, Y).
//   - Edge is an unordered pair of adjacent sites stored in canonical form,
//     so the edge A–B and the edge B–A compare equal and hash identically.
//   - Direction enumerates the four axis-aligned moves in a fixed order:
//     +x, −x, +y, −y. Diagonal moves do not exist on this lattice.
//
// Why:
//
//   - Reinforcement counters are keyed by Edge; traversing an edge in either
//     direction must touch the same counter.
//   - A fixed neighbour order makes weighted sampling deterministic for a
//     given uniform draw.
//
// Complexity:
//
//   - CanonicalEdge, Neighbors, Adjacent, Less: O(1), no allocations.
//
// Contract:
//
//   - CanonicalEdge does not validate adjacency; callers pass neighbours
//     produced by Neighbors or Move. Use Adjacent when the input is untrusted.
package lattice
