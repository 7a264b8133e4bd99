package grove

import (
	"github.com/borkshop/sungrove/internal/hexmap"
)

// CellLight is the light yield of one plant's cell for a sun phase.
type CellLight struct {
	Coord  hexmap.Coord
	Points int
}

// LightPoints computes each listed player's per-cell light yield with the
// sun in the given direction.
//
// For every cell holding the player's plant, the walk steps up to sunReach
// cells toward the sun; if any plant along that line shades the cell (per
// Shadows) the cell yields nothing. Otherwise it yields the plant stage's
// light value. The walk stops at the board edge: nothing beyond it can
// shade the cell.
func LightPoints(b Board, sun hexmap.Direction, players []hexmap.PlayerID) map[hexmap.PlayerID][]CellLight {
	out := make(map[hexmap.PlayerID][]CellLight, len(players))
	cells := b.Map.Flatten()
	for _, player := range players {
		var yields []CellLight
		for _, cell := range cells {
			if cell.Plant == nil || cell.Plant.Owner != player {
				continue
			}
			points := cell.Plant.Stage.LightValue()
			if shadowedUpwind(b.Map, cell.Coord, sun) {
				points = 0
			}
			yields = append(yields, CellLight{Coord: cell.Coord, Points: points})
		}
		out[player] = yields
	}
	return out
}

func shadowedUpwind(m hexmap.Map, at hexmap.Coord, sun hexmap.Direction) bool {
	c := at
	for i := 0; i < sunReach; i++ {
		n, ok := m.Neighbor(c, sun)
		if !ok {
			return false
		}
		if m.PlantAt(n) != nil && Shadows(m, n, at) {
			return true
		}
		c = n
	}
	return false
}

// TallyLight folds a LightPoints result into a per-player total.
func TallyLight(yields map[hexmap.PlayerID][]CellLight) map[hexmap.PlayerID]int {
	totals := make(map[hexmap.PlayerID]int, len(yields))
	for player, cells := range yields {
		total := 0
		for _, cl := range cells {
			total += cl.Points
		}
		totals[player] = total
	}
	return totals
}
