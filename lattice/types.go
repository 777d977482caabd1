package lattice

import "fmt"

// Position is a site of the square lattice.
type Position struct {
	X, Y int
}

// Origin is the site every walk starts from.
var Origin = Position{}

// String renders the position as "x,y", the same form the grid vertex IDs use.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// IsOrigin reports whether p is (0,0).
func (p Position) IsOrigin() bool {
	return p == Origin
}

// Edge is an undirected lattice edge in canonical form: Less(A, B) or A == B.
// Build it with CanonicalEdge; a literal Edge{} with swapped endpoints is a
// different map key.
type Edge struct {
	A, B Position
}

// String renders the edge as "x1,y1-x2,y2".
func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}

// Direction selects one of the four axis-aligned moves.
type Direction int

const (
	// East moves +x.
	East Direction = iota
	// West moves −x.
	West
	// North moves +y.
	North
	// South moves −y.
	South
)

// NumDirections is the lattice coordination number.
const NumDirections = 4

// Directions lists every move in sampling order.
var Directions = [NumDirections]Direction{East, West, North, South}

// offsets are indexed by Direction.
var offsets = [NumDirections][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// String returns the short axis label of d.
func (d Direction) String() string {
	switch d {
	case East:
		return "+x"
	case West:
		return "-x"
	case North:
		return "+y"
	case South:
		return "-y"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
