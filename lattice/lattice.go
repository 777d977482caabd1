package lattice

// Less is the total order used for canonical edges: X first, then Y.
func Less(a, b Position) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// CanonicalEdge returns the edge between a and b with the smaller endpoint
// first. It is symmetric: CanonicalEdge(a, b) == CanonicalEdge(b, a).
// Complexity: O(1).
func CanonicalEdge(a, b Position) Edge {
	if Less(b, a) {
		return Edge{A: b, B: a}
	}
	return Edge{A: a, B: b}
}

// Adjacent reports whether a and b differ by exactly one unit in exactly one
// coordinate.
func Adjacent(a, b Position) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx+dy == 1
}

// Move returns the neighbour of p in direction d.
// Directions outside East..South leave p unchanged.
func Move(p Position, d Direction) Position {
	if d < East || d > South {
		return p
	}
	o := offsets[d]
	return Position{X: p.X + o[0], Y: p.Y + o[1]}
}

// Neighbors returns the four neighbours of p in Directions order.
// Complexity: O(1), no allocations.
func Neighbors(p Position) [NumDirections]Position {
	var nb [NumDirections]Position
	for i, o := range offsets {
		nb[i] = Position{X: p.X + o[0], Y: p.Y + o[1]}
	}
	return nb
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
