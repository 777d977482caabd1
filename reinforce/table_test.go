package reinforce_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hantao-zhou/random-walk/lattice"
	"github.com/hantao-zhou/random-walk/reinforce"
)

// edgeAt returns the canonical edge leaving p in direction d.
func edgeAt(p lattice.Position, d lattice.Direction) lattice.Edge {
	return lattice.CanonicalEdge(p, lattice.Move(p, d))
}

// TableSuite exercises Table under bounded and unbounded memory.
type TableSuite struct {
	suite.Suite
	a, b, c lattice.Edge
}

func (s *TableSuite) SetupTest() {
	s.a = edgeAt(lattice.Origin, lattice.East)
	s.b = edgeAt(lattice.Origin, lattice.North)
	s.c = edgeAt(lattice.Position{X: 1, Y: 0}, lattice.East)
}

// TestCountUnknown verifies a never-recorded edge has count 0.
func (s *TableSuite) TestCountUnknown() {
	t := reinforce.NewTable(reinforce.Unbounded)
	require.Equal(s.T(), 0, t.Count(s.a))
	require.Equal(s.T(), 0, t.Len())
	require.Equal(s.T(), 0, t.Total())
}

// TestUnboundedKeepsEverything verifies M=0 reflects full traversal history.
func (s *TableSuite) TestUnboundedKeepsEverything() {
	t := reinforce.NewTable(reinforce.Unbounded)
	for i := 0; i < 100; i++ {
		t.Record(s.a)
	}
	t.Record(s.b)
	require.Equal(s.T(), 100, t.Count(s.a))
	require.Equal(s.T(), 1, t.Count(s.b))
	require.Equal(s.T(), 101, t.Len())
	require.Equal(s.T(), 101, t.Total())
}

// TestWindowEvictsOldest verifies the sliding window forgets the oldest traversal.
func (s *TableSuite) TestWindowEvictsOldest() {
	t := reinforce.NewTable(2)
	t.Record(s.a)
	t.Record(s.b)
	require.Equal(s.T(), []lattice.Edge{s.a, s.b}, t.History())

	t.Record(s.c)
	require.Equal(s.T(), 0, t.Count(s.a), "oldest edge must be evicted")
	require.Equal(s.T(), 1, t.Count(s.b))
	require.Equal(s.T(), 1, t.Count(s.c))
	require.Equal(s.T(), []lattice.Edge{s.b, s.c}, t.History())
	require.Equal(s.T(), 2, t.Total())
}

// TestWindowRepeatedEdge verifies repeated traversals are evicted one at a time.
func (s *TableSuite) TestWindowRepeatedEdge() {
	t := reinforce.NewTable(3)
	t.Record(s.a)
	t.Record(s.a)
	t.Record(s.a)
	require.Equal(s.T(), 3, t.Count(s.a))
	t.Record(s.b)
	require.Equal(s.T(), 2, t.Count(s.a))
	t.Record(s.b)
	t.Record(s.b)
	require.Equal(s.T(), 0, t.Count(s.a))
	require.Equal(s.T(), 3, t.Count(s.b))
}

// TestMemoryOne verifies a one-slot window tracks only the latest edge.
func (s *TableSuite) TestMemoryOne() {
	t := reinforce.NewTable(1)
	for _, e := range []lattice.Edge{s.a, s.b, s.a, s.c, s.c} {
		t.Record(e)
		require.LessOrEqual(s.T(), t.Len(), 1)
		require.Equal(s.T(), 1, t.Count(e))
		require.Equal(s.T(), 1, t.Total())
	}
	require.Equal(s.T(), 0, t.Count(s.a))
	require.Equal(s.T(), 1, t.Limit())
}

// TestHistoryIsCopy verifies callers cannot mutate table state through History.
func (s *TableSuite) TestHistoryIsCopy() {
	t := reinforce.NewTable(reinforce.Unbounded)
	t.Record(s.a)
	h := t.History()
	h[0] = s.b
	require.Equal(s.T(), []lattice.Edge{s.a}, t.History())
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

// TestNewTable_NegativeLimitPanics checks constructor validation.
func TestNewTable_NegativeLimitPanics(t *testing.T) {
	assert.Panics(t, func() { reinforce.NewTable(-1) })
}

// TestTable_InvariantsUnderRandomSequences compares the table against a
// naive slice-backed model over random edge sequences and window sizes.
func TestTable_InvariantsUnderRandomSequences(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, limit := range []int{0, 1, 2, 5, 17, 64} {
		tbl := reinforce.NewTable(limit)
		var model []lattice.Edge
		p := lattice.Origin
		for i := 0; i < 2000; i++ {
			d := lattice.Directions[r.Intn(lattice.NumDirections)]
			n := lattice.Move(p, d)
			e := lattice.CanonicalEdge(p, n)
			p = n

			tbl.Record(e)
			model = append(model, e)
			if limit > 0 && len(model) > limit {
				model = model[1:]
			}

			if limit > 0 {
				require.LessOrEqual(t, tbl.Len(), limit)
				require.LessOrEqual(t, tbl.Total(), limit)
			}
			require.Equal(t, len(model), tbl.Len())
		}

		want := map[lattice.Edge]int{}
		for _, e := range model {
			want[e]++
		}
		sum := 0
		for e, c := range want {
			assert.Equal(t, c, tbl.Count(e), "limit=%d edge=%v", limit, e)
			sum += c
		}
		assert.Equal(t, sum, tbl.Total(), "limit=%d", limit)
		assert.Equal(t, model, tbl.History(), "limit=%d", limit)
	}
}
