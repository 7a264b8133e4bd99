package hexmap

import (
	"fmt"
	"sort"
)

// DefaultRadius is the radius of the standard board: 37 cells.
const DefaultRadius = 3

// Cell is one board location. Its identity is its coordinate; Soil grades
// how rich the ground is, and Plant is nil while the cell is empty.
type Cell struct {
	Coord Coord
	Soil  int
	Plant *Plant
}

// Map is the board footprint: a sparse set of cells keyed by coordinate.
// A valid board is not a rectangle; coordinates outside the footprint are
// simply absent. Map values are immutable by convention: SetCell returns a
// fresh Map and never touches the receiver's storage.
type Map struct {
	cells  map[Coord]Cell
	radius int
}

// New builds the standard board of the given radius, every cell empty with
// ring-graded soil: the center grades radius+1 and each ring outward one
// less, so the rim grades 1.
func New(radius int) Map {
	m := Map{
		cells:  make(map[Coord]Cell, cellCount(radius)),
		radius: radius,
	}
	center := Coord{}
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := Coord{q, r}
			if abs(c.S()) > radius {
				continue
			}
			m.cells[c] = Cell{
				Coord: c,
				Soil:  radius + 1 - Distance(center, c),
			}
		}
	}
	return m
}

func cellCount(radius int) int {
	return 3*radius*(radius+1) + 1
}

// Radius returns the board radius.
func (m Map) Radius() int { return m.radius }

// Len returns the number of cells on the board.
func (m Map) Len() int { return len(m.cells) }

// Valid reports whether the coordinate is on the board.
func (m Map) Valid(c Coord) bool {
	_, ok := m.cells[c]
	return ok
}

// CellAt returns the cell at the coordinate, or false if the coordinate is
// off the board.
func (m Map) CellAt(c Coord) (Cell, bool) {
	cell, ok := m.cells[c]
	return cell, ok
}

// PlantAt returns the plant at the coordinate, or nil if the cell is empty
// or off the board.
func (m Map) PlantAt(c Coord) *Plant {
	cell, ok := m.cells[c]
	if !ok {
		return nil
	}
	return cell.Plant
}

// Neighbor returns the adjacent coordinate in the given direction, or false
// if that coordinate is off the board.
func (m Map) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Neighbor(d)
	_, ok := m.cells[n]
	return n, ok
}

// SetCell returns a copy of the map with the cell at cell.Coord replaced.
// The coordinate must already be part of the board footprint.
func (m Map) SetCell(cell Cell) (Map, error) {
	if !m.Valid(cell.Coord) {
		return Map{}, fmt.Errorf("hexmap: set cell at %v: coordinate off board", cell.Coord)
	}
	next := Map{
		cells:  make(map[Coord]Cell, len(m.cells)),
		radius: m.radius,
	}
	for k, v := range m.cells {
		next.cells[k] = v
	}
	next.cells[cell.Coord] = cell
	return next, nil
}

// Flatten returns every cell on the board in a stable order (row-major by
// r then q), so iteration-based callers see a deterministic sequence.
func (m Map) Flatten() []Cell {
	cells := make([]Cell, 0, len(m.cells))
	for _, c := range m.cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Coord.R != cells[j].Coord.R {
			return cells[i].Coord.R < cells[j].Coord.R
		}
		return cells[i].Coord.Q < cells[j].Coord.Q
	})
	return cells
}
