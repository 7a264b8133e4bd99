package grove

import (
	"github.com/borkshop/sungrove/internal/hexmap"
)

// sunReach is how far upwind a cell looks for shadow casters: the reach of
// the tallest plant.
const sunReach = 3

// Shadows reports whether a plant at caster blocks sunlight to target.
//
// The target's own state is checked first: an off-board or empty target is
// shadowed by definition, and a seed can never receive light. Past that the
// caster decides: seeds and empty cells cast nothing, a small plant only
// shades an adjacent small plant, a medium plant shades small and medium
// plants within two cells, and a large plant shades anything within three.
func Shadows(m hexmap.Map, caster, target hexmap.Coord) bool {
	tp := m.PlantAt(target)
	if tp == nil {
		return true
	}
	if tp.Stage == hexmap.StageSeed {
		return true
	}
	cp := m.PlantAt(caster)
	if cp == nil {
		return false
	}
	d := hexmap.Distance(caster, target)
	switch cp.Stage {
	case hexmap.StageSmall:
		return tp.Stage == hexmap.StageSmall && d == 1
	case hexmap.StageMedium:
		return tp.Stage <= hexmap.StageMedium && d <= 2
	case hexmap.StageLarge:
		return d <= sunReach
	default:
		return false
	}
}
