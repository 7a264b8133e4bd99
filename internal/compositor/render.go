package compositor

import (
	"bufio"
	"io"

	"github.com/borkshop/sungrove/internal/raster"
)

// Render merges the layers and writes the result to w: one line per screen
// row with a trailing newline, each present cell in its color, each absent
// cell as a plain space. Color escapes are emitted only when the color
// changes, and every row ends back at the terminal default.
func Render(g GUI, w io.Writer) error {
	merged, err := g.Merged()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < g.height; y++ {
		current := raster.Default
		for x := 0; x < g.width; x++ {
			cell := merged.At(x, y)
			if !cell.Present() {
				bw.WriteByte(' ')
				continue
			}
			if cell.Color != current {
				bw.WriteString(cell.Color.SGR())
				current = cell.Color
			}
			bw.WriteRune(cell.Ch)
		}
		if current != raster.Default {
			bw.WriteString(raster.Default.SGR())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
