package raster

import (
	"fmt"
	"strings"
)

// BlankChar is the glyph-file character that marks a transparent cell.
const BlankChar = ' '

// Parse builds a raster from two parallel texts: glyphs carries the
// characters, colors a single-letter color code per present glyph. Each
// line is one grid row; lines are not padded, so the result may be jagged.
// Every present glyph must have a color code at the same position.
func Parse(glyphs, colors string) (Raster, error) {
	glyphLines := splitLines(glyphs)
	colorLines := splitLines(colors)
	rows := make([][]Cell, len(glyphLines))
	for y, line := range glyphLines {
		var colorLine []rune
		if y < len(colorLines) {
			colorLine = []rune(colorLines[y])
		}
		runes := []rune(line)
		row := make([]Cell, len(runes))
		for x, ch := range runes {
			if ch == BlankChar {
				continue
			}
			if x >= len(colorLine) {
				return Raster{}, fmt.Errorf("raster: parse: no color code for glyph %q at row %d col %d", ch, y, x)
			}
			color, err := ParseColor(colorLine[x])
			if err != nil {
				return Raster{}, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			row[x] = Cell{Ch: ch, Color: color}
		}
		rows[y] = row
	}
	return Raster{rows: rows}, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
