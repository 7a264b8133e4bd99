// Package hexmap provides the hex board: axial coordinates, the six sun
// directions, and the sparse cell map the rules engine runs over.
//
// Coordinates are axial (q, r) with the third cube coordinate derived as
// s = -q - r. The q axis is the board diagonal and maps to the horizontal
// screen axis when rendered.
package hexmap

// Coord is a position on the hex grid in axial coordinates.
type Coord struct {
	Q, R int
}

// At is a convenience constructor for Coord.
func At(q, r int) Coord { return Coord{q, r} }

// S returns the implicit third cube coordinate.
func (c Coord) S() int { return -c.Q - c.R }

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	c.Q += o.Q
	c.R += o.R
	return c
}

// Neighbor returns the adjacent coordinate in the given direction. It is
// pure coordinate arithmetic; use Map.Neighbor to respect board bounds.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(directionOffsets[d])
}

// Distance returns the hex-grid distance between two coordinates, the
// maximum absolute difference of the cube coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Direction is one of the six compass directions around a hex, cyclically
// ordered clockwise starting from East.
type Direction int

// The six directions, in clockwise order.
const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast

	NumDirections = 6
)

var directionOffsets = [NumDirections]Coord{
	East:      {Q: 1, R: 0},
	SouthEast: {Q: 0, R: 1},
	SouthWest: {Q: -1, R: 1},
	West:      {Q: -1, R: 0},
	NorthWest: {Q: 0, R: -1},
	NorthEast: {Q: 1, R: -1},
}

// RotateCW advances to the next direction clockwise, wrapping after the
// sixth.
func (d Direction) RotateCW() Direction {
	return (d + 1) % NumDirections
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	default:
		return "Direction(?)"
	}
}
