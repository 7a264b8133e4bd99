package hexmap

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// soilGrades is the number of soil grades a generated board uses.
const soilGrades = 4

// Generate builds a board of the given radius with noise-varied soil
// instead of the standard ring grading. Two boards generated with the same
// seed are identical.
func Generate(radius int, seed int64) Map {
	noise := opensimplex.NewNormalized(seed)
	m := Map{
		cells:  make(map[Coord]Cell, cellCount(radius)),
		radius: radius,
	}
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := Coord{q, r}
			if abs(c.S()) > radius {
				continue
			}
			// Project axial coordinates onto the plane so adjacent
			// hexes sample nearby noise.
			x := float64(c.Q) + float64(c.R)/2
			y := float64(c.R) * 0.8660254037844386
			grade := 1 + int(noise.Eval2(x*0.35, y*0.35)*soilGrades)
			if grade > soilGrades {
				grade = soilGrades
			}
			m.cells[c] = Cell{Coord: c, Soil: grade}
		}
	}
	return m
}
