// Command sungrove is an interactive proof of the board engine and
// compositor: move the cursor around the hex board, plant, grow, and
// harvest, and watch light points accrue as the sun rotates.
package main

import (
	"errors"
	"fmt"
	"log"

	termbox "github.com/nsf/termbox-go"

	"github.com/borkshop/sungrove/internal/compositor"
	"github.com/borkshop/sungrove/internal/grove"
	"github.com/borkshop/sungrove/internal/hexmap"
	"github.com/borkshop/sungrove/internal/raster"
)

var players = []hexmap.PlayerID{0, 1}

var playerColors = []raster.Color{raster.Green, raster.Red}

var stageGlyphs = map[hexmap.Stage]rune{
	hexmap.StageSeed:   '.',
	hexmap.StageSmall:  'o',
	hexmap.StageMedium: 'O',
	hexmap.StageLarge:  'Y',
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	board  grove.Board
	gui    compositor.GUI
	cursor hexmap.Coord
	turn   int
	scores map[hexmap.PlayerID]int
}

func run() error {
	board := grove.NewBoard()
	cells := make([]hexmap.Coord, 0, board.Map.Len())
	for _, cell := range board.Map.Flatten() {
		cells = append(cells, cell.Coord)
	}
	gui, err := compositor.New(cells)
	if err != nil {
		return err
	}

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	g := &game{
		board:  board,
		gui:    gui,
		scores: map[hexmap.PlayerID]int{},
	}

Loop:
	for {
		if err := g.paint(); err != nil {
			return err
		}
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			switch {
			case ev.Ch == 'q' || ev.Key == termbox.KeyEsc:
				break Loop
			case ev.Key == termbox.KeyArrowLeft:
				g.move(hexmap.West)
			case ev.Key == termbox.KeyArrowRight:
				g.move(hexmap.East)
			case ev.Key == termbox.KeyArrowUp:
				g.move(hexmap.NorthWest)
			case ev.Key == termbox.KeyArrowDown:
				g.move(hexmap.SouthEast)
			case ev.Ch == 'p':
				g.apply(func(b grove.Board) (grove.Board, error) {
					return grove.PlantSeed(b, g.player(), g.cursor)
				})
			case ev.Ch == 'g':
				g.apply(func(b grove.Board) (grove.Board, error) {
					return grove.GrowPlant(b, g.cursor, g.player())
				})
			case ev.Ch == 'h':
				g.apply(func(b grove.Board) (grove.Board, error) {
					return grove.Harvest(b, g.player(), g.cursor)
				})
			case ev.Ch == 's':
				g.endPhase()
			case ev.Key == termbox.KeyTab:
				g.turn++
			}
		case termbox.EventError:
			return ev.Err
		}
	}
	return nil
}

func (g *game) player() hexmap.PlayerID {
	return players[g.turn%len(players)]
}

func (g *game) move(d hexmap.Direction) {
	if n, ok := g.board.Map.Neighbor(g.cursor, d); ok {
		g.cursor = n
	}
}

func (g *game) apply(op func(grove.Board) (grove.Board, error)) {
	next, err := op(g.board)
	switch {
	case err == nil:
		g.board = next
	case errors.Is(err, grove.ErrIllegalPlantSeed),
		errors.Is(err, grove.ErrIllegalGrowPlant),
		errors.Is(err, grove.ErrIllegalHarvest):
		// Rejected moves just leave the position unchanged.
	default:
		log.Print(err)
	}
}

func (g *game) endPhase() {
	yields := grove.LightPoints(g.board, g.board.Sun, players)
	for player, total := range grove.TallyLight(yields) {
		g.scores[player] += total
	}
	g.board = grove.EndPhase(g.board)
}

// paint rebuilds the plant layer from the current position and blits the
// merged screen into termbox.
func (g *game) paint() error {
	gui, err := compositor.UpdateLayer(g.gui, compositor.LayerHexes2,
		func(layer raster.Raster) raster.Raster {
			w, h := g.gui.Size()
			fresh := raster.Blank(w, h)
			fresh = g.drawPlants(fresh)
			fresh = g.drawCursor(fresh)
			fresh = g.drawStatus(fresh)
			return fresh
		})
	if err != nil {
		return err
	}
	g.gui = gui
	if err := compositor.Blit(g.gui); err != nil {
		return err
	}
	return termbox.Flush()
}

func (g *game) drawPlants(layer raster.Raster) raster.Raster {
	for _, cell := range g.board.Map.Flatten() {
		if cell.Plant == nil {
			continue
		}
		x, y := g.gui.ScreenPos(cell.Coord)
		mark := raster.Ink(stageGlyphs[cell.Plant.Stage], playerColors[int(cell.Plant.Owner)%len(playerColors)])
		layer = stamp(layer, mark, x, y)
	}
	return layer
}

func (g *game) drawCursor(layer raster.Raster) raster.Raster {
	x, y := g.gui.ScreenPos(g.cursor)
	layer = stamp(layer, raster.Ink('[', raster.Yellow), x-2, y)
	layer = stamp(layer, raster.Ink(']', raster.Yellow), x+2, y)
	return layer
}

func (g *game) drawStatus(layer raster.Raster) raster.Raster {
	status := fmt.Sprintf("player %d  sun %s  scores %d:%d  [p]lant [g]row [h]arvest [s]un [q]uit",
		g.player(), g.board.Sun, g.scores[players[0]], g.scores[players[1]])
	return stampText(layer, status, 2, 0, raster.White)
}

func stamp(layer raster.Raster, cell raster.Cell, x, y int) raster.Raster {
	out, err := raster.Draw(layer, raster.OfGrid([][]raster.Cell{{cell}}), x, y)
	if err != nil {
		return layer
	}
	return out
}

func stampText(layer raster.Raster, text string, x, y int, color raster.Color) raster.Raster {
	runes := []rune(text)
	row := make([]raster.Cell, len(runes))
	for i, ch := range runes {
		row[i] = raster.Ink(ch, color)
	}
	out, err := raster.Draw(layer, raster.OfGrid([][]raster.Cell{row}), x, y)
	if err != nil {
		return layer
	}
	return out
}
