// Package randomwalk is a simulation core for random walks on the square
// lattice Z², including the edge-reinforced walk (ERW), where recently
// traversed edges become more likely to be traversed again.
//
// What is in the box:
//
//	lattice/    — Position, canonical undirected Edge, the four axis moves
//	reinforce/  — bounded-memory per-edge traversal counter (sliding window)
//	sampler/    — uniform and reinforcement-weighted next-move sampling
//	walk/       — full trajectories: Simple and Reinforced
//	montecarlo/ — mean first-return time to the origin, censored at a budget
//	rng/        — per-call random sources (fresh entropy or seeded)
//	cmd/erwalk  — command-line front end (JSON trajectories, estimates)
//
// Every call owns its randomness and its reinforcement state: nothing is
// shared between calls or between Monte Carlo trials. Pass WithSeed to make
// a call reproducible.
//
// Quick example:
//
//	tr := walk.Reinforced(1000, walk.Params{Strength: 1, Delay: 10, Memory: 50})
//	mean := montecarlo.MeanReturnTimeSimple(10000, 1000)
//
//	go get github.com/hantao-zhou/random-walk
package randomwalk
