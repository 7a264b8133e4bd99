// Package raster provides cell grids for terminal sprites: jagged 2D grids
// of colored characters with transparency-aware drawing and layer merging.
//
// A zero Cell is transparent. Drawing one raster over another replaces only
// where the source cell is present, so sprites keep their shape when
// stamped over a scene.
package raster

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a draw would place source cells past the
// destination's edge. Drawing never clips silently.
var ErrOutOfBounds = errors.New("raster: draw out of bounds")

// Cell is one drawable character. A zero Ch means the cell is transparent.
type Cell struct {
	Ch    rune
	Color Color
}

// Ink is a convenience constructor for a present Cell.
func Ink(ch rune, color Color) Cell { return Cell{Ch: ch, Color: color} }

// Present reports whether the cell holds a character.
func (c Cell) Present() bool { return c.Ch != 0 }

// Raster is a grid of cells. Rows may be jagged: asset files are not padded
// to equal length, and the grid keeps exactly what it was given. Width is
// the length of the longest row.
type Raster struct {
	rows [][]Cell
}

// Fill returns a w×h raster with every cell set to the given value.
func Fill(value Cell, w, h int) Raster {
	rows := make([][]Cell, h)
	for y := range rows {
		row := make([]Cell, w)
		for x := range row {
			row[x] = value
		}
		rows[y] = row
	}
	return Raster{rows: rows}
}

// Blank returns a w×h raster of transparent cells.
func Blank(w, h int) Raster {
	return Fill(Cell{}, w, h)
}

// OfGrid wraps an existing grid, jagged rows and all. The rows are copied
// so later writes through the argument cannot reach the raster.
func OfGrid(rows [][]Cell) Raster {
	return Raster{rows: copyGrid(rows)}
}

// Grid returns a copy of the raster's rows, preserving jagged lengths.
func (r Raster) Grid() [][]Cell {
	return copyGrid(r.rows)
}

func copyGrid(rows [][]Cell) [][]Cell {
	cp := make([][]Cell, len(rows))
	for y, row := range rows {
		if row == nil {
			continue
		}
		cp[y] = make([]Cell, len(row))
		copy(cp[y], row)
	}
	return cp
}

// Height returns the number of rows.
func (r Raster) Height() int { return len(r.rows) }

// Width returns the length of the longest row.
func (r Raster) Width() int {
	w := 0
	for _, row := range r.rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the cell at (x, y); cells past a short row are transparent.
func (r Raster) At(x, y int) Cell {
	if y < 0 || y >= len(r.rows) {
		return Cell{}
	}
	row := r.rows[y]
	if x < 0 || x >= len(row) {
		return Cell{}
	}
	return row[x]
}

// Draw returns a copy of dst with src overlaid at column x, row y. Present
// source cells replace destination cells; transparent source cells leave
// the destination untouched. The source must fit: an offset placing any of
// src past dst's bounds is ErrOutOfBounds.
func Draw(dst, src Raster, x, y int) (Raster, error) {
	if x < 0 || y < 0 || x+src.Width() > dst.Width() || y+src.Height() > dst.Height() {
		return Raster{}, fmt.Errorf("%w: %dx%d at (%d,%d) onto %dx%d",
			ErrOutOfBounds, src.Width(), src.Height(), x, y, dst.Width(), dst.Height())
	}
	out := dst.Grid()
	for sy, row := range src.rows {
		for sx, cell := range row {
			if !cell.Present() {
				continue
			}
			// A jagged destination row may stop short of the checked
			// bounds; pad it with transparent cells up to the landing
			// column.
			for x+sx >= len(out[y+sy]) {
				out[y+sy] = append(out[y+sy], Cell{})
			}
			out[y+sy][x+sx] = cell
		}
	}
	return Raster{rows: out}, nil
}

// MergeTwo overlays over onto under at zero offset. The two rasters must
// have identical bounds.
func MergeTwo(under, over Raster) (Raster, error) {
	if under.Width() != over.Width() || under.Height() != over.Height() {
		return Raster{}, fmt.Errorf("raster: merge size mismatch: %dx%d over %dx%d",
			over.Width(), over.Height(), under.Width(), under.Height())
	}
	return Draw(under, over, 0, 0)
}

// Merge flattens named layers back to front: order[0] is the bottom. An
// empty order yields a zero-size raster. Every name in order must be a key
// of layers.
func Merge(order []string, layers map[string]Raster) (Raster, error) {
	if len(order) == 0 {
		return Raster{}, nil
	}
	merged, ok := layers[order[0]]
	if !ok {
		return Raster{}, fmt.Errorf("raster: merge: no layer %q", order[0])
	}
	for _, name := range order[1:] {
		over, ok := layers[name]
		if !ok {
			return Raster{}, fmt.Errorf("raster: merge: no layer %q", name)
		}
		var err error
		merged, err = MergeTwo(merged, over)
		if err != nil {
			return Raster{}, fmt.Errorf("merge layer %q: %w", name, err)
		}
	}
	return merged, nil
}
