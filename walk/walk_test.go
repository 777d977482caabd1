package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/rng"
	"github.com/hantao-zhou/random-walk/walk"
)

// requireLatticePath asserts tr has steps+1 unit-step points starting at the origin.
func requireLatticePath(t *testing.T, tr walk.Trajectory, steps int) {
	t.Helper()
	require.Equal(t, steps+1, tr.Len())
	require.Len(t, tr.Y, steps+1)
	pts := tr.Points()
	require.Equal(t, lattice.Origin, pts[0])
	for i := 1; i < len(pts); i++ {
		require.True(t, lattice.Adjacent(pts[i-1], pts[i]), "points %d,%d: %v -> %v", i-1, i, pts[i-1], pts[i])
	}
}

// backtrackRate returns the fraction of steps that immediately undo the previous one.
func backtrackRate(tr walk.Trajectory) float64 {
	pts := tr.Points()
	if len(pts) < 3 {
		return 0
	}
	back := 0
	for i := 2; i < len(pts); i++ {
		if pts[i] == pts[i-2] {
			back++
		}
	}
	return float64(back) / float64(len(pts)-2)
}

// meanSquaredDisplacement averages |end|² over n walks produced by gen.
func meanSquaredDisplacement(n int, gen func() walk.Trajectory) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		tr := gen()
		x, y := tr.X[len(tr.X)-1], tr.Y[len(tr.Y)-1]
		sum += float64(x*x + y*y)
	}
	return sum / float64(n)
}

//----------------------------------------------------------------------------//
// Simple
//----------------------------------------------------------------------------//

func TestSimple_Shape(t *testing.T) {
	for _, steps := range []int{0, 1, 2, 17, 1000} {
		requireLatticePath(t, walk.Simple(steps, walk.WithSeed(int64(steps))), steps)
	}
}

// TestSimple_NegativeSteps verifies negative input yields the single origin point.
func TestSimple_NegativeSteps(t *testing.T) {
	tr := walk.Simple(-5)
	assert.Equal(t, []float32{0}, tr.X)
	assert.Equal(t, []float32{0}, tr.Y)
}

func TestSimple_SeedReproducible(t *testing.T) {
	assert.Equal(t, walk.Simple(300, walk.WithSeed(8)), walk.Simple(300, walk.WithSeed(8)))
}

// TestSimple_Diffusive checks E|X_n|² = n for the simple walk.
func TestSimple_Diffusive(t *testing.T) {
	r := rng.Seeded(21)
	msd := meanSquaredDisplacement(2000, func() walk.Trajectory {
		return walk.Simple(100, walk.WithRand(r))
	})
	assert.InDelta(t, 100, msd, 12)
}

//----------------------------------------------------------------------------//
// Reinforced
//----------------------------------------------------------------------------//

func TestReinforced_Shape(t *testing.T) {
	params := []walk.Params{
		{Strength: 0, Delay: 0, Memory: 0},
		{Strength: 3, Delay: 5, Memory: 0},
		{Strength: 10, Delay: 0, Memory: 1},
		{Strength: 0.5, Delay: 100, Memory: 20},
	}
	for _, p := range params {
		t.Run(p.String(), func(t *testing.T) {
			for _, steps := range []int{0, 1, 50, 500} {
				requireLatticePath(t, walk.Reinforced(steps, p, walk.WithSeed(4)), steps)
			}
		})
	}
}

// TestReinforced_ZeroSteps verifies a zero-step walk is the single origin point.
func TestReinforced_ZeroSteps(t *testing.T) {
	tr := walk.Reinforced(0, walk.Params{Strength: 2, Delay: 1, Memory: 3})
	assert.Equal(t, []float32{0}, tr.X)
	assert.Equal(t, []float32{0}, tr.Y)

	tr = walk.Reinforced(-3, walk.Params{})
	assert.Equal(t, 1, tr.Len())
}

// TestReinforced_ZeroStrengthMatchesSimple compares diffusive scaling and
// backtrack rate of a zero-strength walk with the simple walk.
func TestReinforced_ZeroStrengthMatchesSimple(t *testing.T) {
	r := rng.Seeded(33)
	msd := meanSquaredDisplacement(2000, func() walk.Trajectory {
		return walk.Reinforced(100, walk.Params{Strength: 0}, walk.WithRand(r))
	})
	assert.InDelta(t, 100, msd, 12)

	long := walk.Reinforced(20000, walk.Params{Strength: 0}, walk.WithSeed(34))
	assert.InDelta(t, 0.25, backtrackRate(long), 0.02)
	assert.InDelta(t, 0.25, backtrackRate(walk.Simple(20000, walk.WithSeed(35))), 0.02)
}

// TestReinforced_MemoryOneBacktracks checks that a one-slot memory with large
// strength makes the walk bounce across its last edge.
func TestReinforced_MemoryOneBacktracks(t *testing.T) {
	tr := walk.Reinforced(5000, walk.Params{Strength: 1000, Memory: 1}, walk.WithSeed(12))
	assert.Greater(t, backtrackRate(tr), 0.95)
}

// TestReinforced_DelayDisablesBias checks that no bias appears while the
// step index stays below Delay.
func TestReinforced_DelayDisablesBias(t *testing.T) {
	const steps = 20000
	tr := walk.Reinforced(steps, walk.Params{Strength: 1000, Delay: steps, Memory: 1}, walk.WithSeed(13))
	assert.InDelta(t, 0.25, backtrackRate(tr), 0.02)
}

// TestReinforced_DelayBoundary checks activation begins at step index Delay:
// with Delay=1 the second move (index 1) is already biased.
func TestReinforced_DelayBoundary(t *testing.T) {
	const runs = 2000
	back := 0
	r := rng.Seeded(14)
	for i := 0; i < runs; i++ {
		tr := walk.Reinforced(2, walk.Params{Strength: 1000, Delay: 1, Memory: 1}, walk.WithRand(r))
		if tr.X[2] == 0 && tr.Y[2] == 0 {
			back++
		}
	}
	assert.Greater(t, back, runs*95/100)
}

func TestReinforced_SeedReproducible(t *testing.T) {
	p := walk.Params{Strength: 1.5, Delay: 3, Memory: 7}
	assert.Equal(t, walk.Reinforced(400, p, walk.WithSeed(5)), walk.Reinforced(400, p, walk.WithSeed(5)))
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { walk.WithRand(nil) })
}
