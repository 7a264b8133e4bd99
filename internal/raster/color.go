package raster

import (
	"fmt"
)

// Color is one of the eight basic terminal colors.
type Color int

// The palette, in ANSI SGR order with Default first.
const (
	Default Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// colorCodes maps the single-letter codes used by .color asset files.
var colorCodes = map[rune]Color{
	'd': Default,
	'r': Red,
	'g': Green,
	'y': Yellow,
	'b': Blue,
	'm': Magenta,
	'c': Cyan,
	'w': White,
}

// ParseColor maps a single-letter color code to its Color. Any letter
// outside the palette is a hard failure: it means a broken asset file, not
// a recoverable condition.
func ParseColor(code rune) (Color, error) {
	c, ok := colorCodes[code]
	if !ok {
		return 0, fmt.Errorf("raster: invalid color code %q", code)
	}
	return c, nil
}

// sgr holds the precomputed escape sequence per color.
var sgr [White + 1]string

func init() {
	sgr[Default] = "\033[m"
	sgr[Red] = "\033[31m"
	sgr[Green] = "\033[32m"
	sgr[Yellow] = "\033[33m"
	sgr[Blue] = "\033[34m"
	sgr[Magenta] = "\033[35m"
	sgr[Cyan] = "\033[36m"
	sgr[White] = "\033[37m"
}

// SGR returns the ANSI escape sequence selecting this color as the
// foreground.
func (c Color) SGR() string {
	if c < 0 || int(c) >= len(sgr) {
		return sgr[Default]
	}
	return sgr[c]
}

func (c Color) String() string {
	switch c {
	case Default:
		return "default"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}
