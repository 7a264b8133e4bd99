// Package grove is the rules engine: planting, growth, harvesting, sun
// rotation, shadow casting, and light-point accrual over a hexmap board.
//
// Every operation takes a Board value and returns a new one; nothing
// mutates in place. Callers that want to pre-check legality use the Legal*
// predicates; the mutators report the same conditions as errors.
package grove

import (
	"errors"

	"github.com/borkshop/sungrove/internal/hexmap"
)

// Illegal game actions. The game loop is expected to check the Legal*
// predicates first and treat these as UI or programming errors when they
// still surface.
var (
	ErrIllegalPlantSeed = errors.New("grove: illegal plant seed")
	ErrIllegalGrowPlant = errors.New("grove: illegal grow plant")
	ErrIllegalHarvest   = errors.New("grove: illegal harvest")
)

// Board is the whole game position: the cell map and the current sun
// direction. Board is a value; operations return updated copies.
type Board struct {
	Map hexmap.Map
	Sun hexmap.Direction
}

// NewBoard returns the standard starting position: an empty default-radius
// board with the sun in the East.
func NewBoard() Board {
	return Board{Map: hexmap.New(hexmap.DefaultRadius)}
}

// LegalPlantSeed reports whether player may plant a seed at the coordinate:
// the cell must exist and be empty.
func LegalPlantSeed(b Board, c hexmap.Coord) bool {
	cell, ok := b.Map.CellAt(c)
	return ok && cell.Plant == nil
}

// PlantSeed places a seed owned by player on an empty cell.
func PlantSeed(b Board, player hexmap.PlayerID, c hexmap.Coord) (Board, error) {
	cell, ok := b.Map.CellAt(c)
	if !ok || cell.Plant != nil {
		return Board{}, ErrIllegalPlantSeed
	}
	cell.Plant = &hexmap.Plant{Owner: player, Stage: hexmap.StageSeed}
	return b.withCell(cell)
}

// LegalGrowPlant reports whether player may grow the plant at the
// coordinate: the plant must exist, belong to player, and have a next
// stage.
func LegalGrowPlant(b Board, c hexmap.Coord, player hexmap.PlayerID) bool {
	p := b.Map.PlantAt(c)
	if p == nil || p.Owner != player {
		return false
	}
	_, ok := p.Stage.Next()
	return ok
}

// GrowPlant advances the plant at the coordinate one stage. Only the owner
// may grow it, and a large plant grows no further.
func GrowPlant(b Board, c hexmap.Coord, player hexmap.PlayerID) (Board, error) {
	cell, ok := b.Map.CellAt(c)
	if !ok || cell.Plant == nil || cell.Plant.Owner != player {
		return Board{}, ErrIllegalGrowPlant
	}
	next, ok := cell.Plant.Stage.Next()
	if !ok {
		return Board{}, ErrIllegalGrowPlant
	}
	cell.Plant = &hexmap.Plant{Owner: player, Stage: next}
	return b.withCell(cell)
}

// LegalHarvest reports whether player may harvest the plant at the
// coordinate: it must be a large plant owned by player.
func LegalHarvest(b Board, c hexmap.Coord, player hexmap.PlayerID) bool {
	p := b.Map.PlantAt(c)
	return p != nil && p.Owner == player && p.Stage == hexmap.StageLarge
}

// Harvest removes a large plant owned by player, leaving the cell empty
// with its soil intact.
func Harvest(b Board, player hexmap.PlayerID, c hexmap.Coord) (Board, error) {
	cell, ok := b.Map.CellAt(c)
	if !ok || cell.Plant == nil || cell.Plant.Owner != player || cell.Plant.Stage != hexmap.StageLarge {
		return Board{}, ErrIllegalHarvest
	}
	cell.Plant = nil
	return b.withCell(cell)
}

// MoveSun rotates the sun one direction clockwise. Six moves return it to
// where it started.
func MoveSun(b Board) Board {
	b.Sun = b.Sun.RotateCW()
	return b
}

// EndPhase closes out a sun phase; today that is just the sun moving on.
func EndPhase(b Board) Board {
	return MoveSun(b)
}

func (b Board) withCell(cell hexmap.Cell) (Board, error) {
	m, err := b.Map.SetCell(cell)
	if err != nil {
		return Board{}, err
	}
	b.Map = m
	return b, nil
}
