package compositor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/borkshop/sungrove/internal/compositor"
	"github.com/borkshop/sungrove/internal/hexmap"
	"github.com/borkshop/sungrove/internal/raster"
)

func TestNew(t *testing.T) {
	g, err := New([]hexmap.Coord{hexmap.At(0, 0)})
	require.NoError(t, err)

	w, h := g.Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	for _, name := range []string{LayerBackground, LayerHexes, LayerHexes2} {
		layer, ok := g.Layer(name)
		require.True(t, ok, "layer %q", name)
		assert.Equal(t, w, layer.Width(), "layers share the screen size")
		assert.Equal(t, h, layer.Height())
	}

	hexes, _ := g.Layer(LayerHexes)
	x, y := g.ScreenPos(hexmap.At(0, 0))
	assert.True(t, hexes.At(x-3, y).Present(), "hex sprite stamped at the cell position")

	_, ok := g.Graphic("hex")
	assert.True(t, ok)
	_, ok = g.Graphic("nonesuch")
	assert.False(t, ok)
}

func TestNew_wholeBoardFits(t *testing.T) {
	m := hexmap.New(hexmap.DefaultRadius)
	coords := make([]hexmap.Coord, 0, m.Len())
	for _, cell := range m.Flatten() {
		coords = append(coords, cell.Coord)
	}
	_, err := New(coords)
	assert.NoError(t, err, "every standard-board hex lands inside 100x30")
}

func TestScreenPos_diagonalIsHorizontal(t *testing.T) {
	g, err := New(nil)
	require.NoError(t, err)

	x0, _ := g.ScreenPos(hexmap.At(0, 0))
	x1, y1 := g.ScreenPos(hexmap.At(1, 0))
	assert.Greater(t, x1, x0, "q advances the screen column")

	_, y2 := g.ScreenPos(hexmap.At(1, 1))
	assert.Greater(t, y2, y1, "r advances the screen row")
}

func TestUpdateLayer(t *testing.T) {
	g, err := New(nil)
	require.NoError(t, err)

	marked, err := UpdateLayer(g, LayerHexes2, func(layer raster.Raster) raster.Raster {
		out, derr := raster.Draw(layer, raster.OfGrid([][]raster.Cell{{raster.Ink('!', raster.Red)}}), 5, 5)
		require.NoError(t, derr)
		return out
	})
	require.NoError(t, err)

	layer, _ := marked.Layer(LayerHexes2)
	assert.Equal(t, '!', layer.At(5, 5).Ch)

	orig, _ := g.Layer(LayerHexes2)
	assert.False(t, orig.At(5, 5).Present(), "update returns a new value")

	_, err = UpdateLayer(g, "nonesuch", func(layer raster.Raster) raster.Raster { return layer })
	assert.Error(t, err)
}

func TestDrawGraphic(t *testing.T) {
	g, err := New(nil)
	require.NoError(t, err)

	g2, err := DrawGraphic(g, "dot", LayerHexes2, 10, 10)
	require.NoError(t, err)
	layer, _ := g2.Layer(LayerHexes2)
	assert.True(t, layer.At(10, 10).Present())

	_, err = DrawGraphic(g, "nonesuch", LayerHexes2, 0, 0)
	assert.Error(t, err)

	_, err = DrawGraphic(g, "dot", "nonesuch", 0, 0)
	assert.Error(t, err)

	_, err = DrawGraphic(g, "hex", LayerHexes, DefaultWidth-2, 0)
	assert.Error(t, err, "draws past the edge fail rather than clip")
}

func TestRender(t *testing.T) {
	g, err := New(nil, WithSize(8, 3), WithOverlays(nil))
	require.NoError(t, err)

	g, err = UpdateLayer(g, LayerHexes2, func(layer raster.Raster) raster.Raster {
		out, derr := raster.Draw(layer, raster.OfGrid([][]raster.Cell{{raster.Ink('x', raster.Green)}}), 2, 1)
		require.NoError(t, derr)
		return out
	})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Render(g, &buf))

	rows := strings.Split(buf.String(), "\n")
	require.Len(t, rows, 4, "three rows plus the trailing newline")
	assert.Equal(t, "        ", rows[0], "background tile renders as spaces")
	assert.Equal(t, "  \033[32mx\033[m     ", rows[1], "colored cell wrapped in set and reset")
	assert.Empty(t, rows[3])
}
