// Package compositor assembles the screen: named raster layers merged back
// to front, a cache of loaded sprite graphics, and the mapping from board
// coordinates to screen positions.
package compositor

import (
	"fmt"
	"io/fs"

	"github.com/borkshop/sungrove/internal/assets"
	"github.com/borkshop/sungrove/internal/hexmap"
	"github.com/borkshop/sungrove/internal/raster"
)

// Layer names, back to front.
const (
	LayerBackground = "background"
	LayerHexes      = "hexes"
	LayerHexes2     = "hexes2"
)

// Default screen size in cells.
const (
	DefaultWidth  = 100
	DefaultHeight = 30
)

// graphicNames is the fixed asset set every GUI loads.
var graphicNames = []string{"hex", "dot", "empty", "vert", "horiz"}

// DrawInstruction names one stamp of a loaded graphic onto a layer.
type DrawInstruction struct {
	Graphic string
	X, Y    int
	Layer   string
}

// DefaultOverlays is the decorative overlay sequence applied after the
// board hexes are stamped. Construction takes any overlay list, so callers
// with real content replace this wholesale.
var DefaultOverlays = []DrawInstruction{
	{Graphic: "horiz", X: 2, Y: 1, Layer: LayerHexes2},
	{Graphic: "horiz", X: 97, Y: 1, Layer: LayerHexes2},
	{Graphic: "vert", X: 2, Y: 28, Layer: LayerHexes2},
	{Graphic: "vert", X: 97, Y: 28, Layer: LayerHexes2},
	{Graphic: "dot", X: 49, Y: 14, Layer: LayerHexes2},
}

// GUI is the compositor state. Like the board, it is a value: operations
// return updated copies, and the graphics cache is never written after
// construction.
type GUI struct {
	width, height int
	layers        map[string]raster.Raster
	order         []string
	graphics      map[string]raster.Raster
}

// Option adjusts GUI construction.
type Option func(*config)

type config struct {
	width, height int
	fsys          fs.FS
	overlays      []DrawInstruction
}

// WithSize overrides the default 100×30 screen.
func WithSize(w, h int) Option {
	return func(c *config) { c.width, c.height = w, h }
}

// WithAssets loads graphics from the given filesystem instead of the
// built-in set.
func WithAssets(fsys fs.FS) Option {
	return func(c *config) { c.fsys = fsys }
}

// WithOverlays replaces the decorative overlay sequence.
func WithOverlays(overlays []DrawInstruction) Option {
	return func(c *config) { c.overlays = overlays }
}

// backgroundTile is the opaque cell the background layer is filled with.
var backgroundTile = raster.Ink(' ', raster.Default)

// New builds the compositor for the given board cells: a filled background,
// a hex sprite stamped at each cell's screen position on the hexes layer,
// and the overlay sequence applied on top.
func New(cells []hexmap.Coord, opts ...Option) (GUI, error) {
	cfg := config{
		width:    DefaultWidth,
		height:   DefaultHeight,
		fsys:     assets.Default,
		overlays: DefaultOverlays,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	graphics, err := assets.LoadAll(cfg.fsys, graphicNames...)
	if err != nil {
		return GUI{}, err
	}

	g := GUI{
		width:  cfg.width,
		height: cfg.height,
		layers: map[string]raster.Raster{
			LayerBackground: raster.Fill(backgroundTile, cfg.width, cfg.height),
			LayerHexes:      raster.Blank(cfg.width, cfg.height),
			LayerHexes2:     raster.Blank(cfg.width, cfg.height),
		},
		order:    []string{LayerBackground, LayerHexes, LayerHexes2},
		graphics: graphics,
	}

	hex := graphics["hex"]
	for _, c := range cells {
		x, y := g.ScreenPos(c)
		g, err = DrawGraphic(g, "hex", LayerHexes, x-hex.Width()/2, y-hex.Height()/2)
		if err != nil {
			return GUI{}, fmt.Errorf("stamp hex at %v: %w", c, err)
		}
	}
	for _, ins := range cfg.overlays {
		g, err = DrawGraphic(g, ins.Graphic, ins.Layer, ins.X, ins.Y)
		if err != nil {
			return GUI{}, fmt.Errorf("overlay %q: %w", ins.Graphic, err)
		}
	}
	return g, nil
}

// Screen layout strides: the q (diagonal) axis runs along screen X, and
// each step in q also drops half a hex row.
const (
	strideQ = 12
	strideR = 4
)

// ScreenPos maps a board coordinate to the screen position of its hex
// center. The diagonal axis maps to the horizontal screen axis.
func (g GUI) ScreenPos(c hexmap.Coord) (x, y int) {
	x = g.width/2 + c.Q*strideQ
	y = g.height/2 + c.R*strideR + c.Q*strideR/2
	return x, y
}

// Size returns the screen dimensions.
func (g GUI) Size() (w, h int) { return g.width, g.height }

// Graphic returns a loaded graphic by name.
func (g GUI) Graphic(name string) (raster.Raster, bool) {
	r, ok := g.graphics[name]
	return r, ok
}

// Layer returns the named layer.
func (g GUI) Layer(name string) (raster.Raster, bool) {
	r, ok := g.layers[name]
	return r, ok
}

// UpdateLayer replaces the named layer with fn(layer).
func UpdateLayer(g GUI, name string, fn func(raster.Raster) raster.Raster) (GUI, error) {
	layer, ok := g.layers[name]
	if !ok {
		return GUI{}, fmt.Errorf("compositor: no layer %q", name)
	}
	return g.withLayer(name, fn(layer)), nil
}

// DrawGraphic stamps a loaded graphic onto the named layer at column x,
// row y.
func DrawGraphic(g GUI, graphic, layer string, x, y int) (GUI, error) {
	spr, ok := g.graphics[graphic]
	if !ok {
		return GUI{}, fmt.Errorf("compositor: no graphic %q", graphic)
	}
	target, ok := g.layers[layer]
	if !ok {
		return GUI{}, fmt.Errorf("compositor: no layer %q", layer)
	}
	drawn, err := raster.Draw(target, spr, x, y)
	if err != nil {
		return GUI{}, fmt.Errorf("compositor: draw %q on %q: %w", graphic, layer, err)
	}
	return g.withLayer(layer, drawn), nil
}

// Merged flattens the layers back to front into one raster.
func (g GUI) Merged() (raster.Raster, error) {
	return raster.Merge(g.order, g.layers)
}

func (g GUI) withLayer(name string, r raster.Raster) GUI {
	layers := make(map[string]raster.Raster, len(g.layers))
	for k, v := range g.layers {
		layers[k] = v
	}
	layers[name] = r
	g.layers = layers
	return g
}
