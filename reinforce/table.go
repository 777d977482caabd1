// SPDX-License-Identifier: MIT
// Package: random-walk/reinforce

package reinforce

import (
	"fmt"

	"github.com/hantao-zhou/random-walk/lattice"
)

// Unbounded is the memory limit that disables eviction.
const Unbounded = 0

// Table is a bounded-memory traversal counter keyed by canonical edge.
type Table struct {
	counts  map[lattice.Edge]uint32
	history ring
	limit   int
	total   int
}

// NewTable returns an empty table remembering at most limit traversals
// (Unbounded for full history). Panics on a negative limit: there is no
// meaningful interpretation for it.
func NewTable(limit int) *Table {
	if limit < 0 {
		panic(fmt.Sprintf("reinforce: NewTable(limit=%d < 0)", limit))
	}
	t := &Table{
		counts: make(map[lattice.Edge]uint32),
		limit:  limit,
	}
	if limit > 0 {
		t.history.grow(limit + 1)
	}
	return t
}

// Record counts one traversal of e and appends it to the history. When the
// history exceeds the limit, the oldest traversal is forgotten and its edge
// count drops by one, never below zero.
// Complexity: O(1) amortized.
func (t *Table) Record(e lattice.Edge) {
	t.counts[e]++
	t.total++
	t.history.push(e)

	if t.limit == Unbounded || t.history.len() <= t.limit {
		return
	}
	old := t.history.pop()
	if c := t.counts[old]; c > 0 {
		t.counts[old] = c - 1
		t.total--
	}
}

// Count returns the remembered traversal count of e, 0 if never recorded.
func (t *Table) Count(e lattice.Edge) int {
	return int(t.counts[e])
}

// Len returns the number of traversals currently held in the history.
func (t *Table) Len() int {
	return t.history.len()
}

// Total returns the sum of all edge counts.
func (t *Table) Total() int {
	return t.total
}

// Limit returns the configured memory window (Unbounded = 0).
func (t *Table) Limit() int {
	return t.limit
}

// History returns a copy of the remembered traversals, oldest first.
func (t *Table) History() []lattice.Edge {
	return t.history.slice()
}
