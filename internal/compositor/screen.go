package compositor

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/borkshop/sungrove/internal/raster"
)

// termboxColors maps the raster palette onto termbox attributes.
var termboxColors = [raster.White + 1]termbox.Attribute{
	raster.Default: termbox.ColorDefault,
	raster.Red:     termbox.ColorRed,
	raster.Green:   termbox.ColorGreen,
	raster.Yellow:  termbox.ColorYellow,
	raster.Blue:    termbox.ColorBlue,
	raster.Magenta: termbox.ColorMagenta,
	raster.Cyan:    termbox.ColorCyan,
	raster.White:   termbox.ColorWhite,
}

// Attr returns the termbox attribute for a raster color.
func Attr(c raster.Color) termbox.Attribute {
	if c < 0 || int(c) >= len(termboxColors) {
		return termbox.ColorDefault
	}
	return termboxColors[c]
}

// Blit merges the layers and copies the result into the termbox back
// buffer, for interactive programs that repaint with termbox.Flush rather
// than writing escape sequences themselves.
func Blit(g GUI) error {
	merged, err := g.Merged()
	if err != nil {
		return err
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cell := merged.At(x, y)
			ch := cell.Ch
			if !cell.Present() {
				ch = ' '
			}
			termbox.SetCell(x, y, ch, Attr(cell.Color), termbox.ColorDefault)
		}
	}
	return nil
}
