package grove_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/borkshop/sungrove/internal/grove"
	"github.com/borkshop/sungrove/internal/hexmap"
)

const (
	alice hexmap.PlayerID = 0
	bob   hexmap.PlayerID = 1
)

// grow is a test helper that plants at c and grows to the given stage.
func grow(t *testing.T, b Board, player hexmap.PlayerID, c hexmap.Coord, to hexmap.Stage) Board {
	t.Helper()
	b, err := PlantSeed(b, player, c)
	require.NoError(t, err)
	for s := hexmap.StageSeed; s < to; s++ {
		b, err = GrowPlant(b, c, player)
		require.NoError(t, err)
	}
	return b
}

func TestPlantSeed(t *testing.T) {
	b := NewBoard()
	c := hexmap.At(1, 1)

	require.True(t, LegalPlantSeed(b, c))
	b, err := PlantSeed(b, alice, c)
	require.NoError(t, err)

	p := b.Map.PlantAt(c)
	require.NotNil(t, p)
	assert.Equal(t, alice, p.Owner)
	assert.Equal(t, hexmap.StageSeed, p.Stage)

	t.Run("occupied cell", func(t *testing.T) {
		for _, player := range []hexmap.PlayerID{alice, bob} {
			assert.False(t, LegalPlantSeed(b, c))
			_, err := PlantSeed(b, player, c)
			assert.ErrorIs(t, err, ErrIllegalPlantSeed)
		}
	})

	t.Run("off board", func(t *testing.T) {
		_, err := PlantSeed(b, alice, hexmap.At(9, 9))
		assert.ErrorIs(t, err, ErrIllegalPlantSeed)
	})
}

func TestGrowPlant(t *testing.T) {
	c := hexmap.At(0, 0)

	t.Run("advances one stage", func(t *testing.T) {
		b := grow(t, NewBoard(), alice, c, hexmap.StageSeed)
		b, err := GrowPlant(b, c, alice)
		require.NoError(t, err)
		assert.Equal(t, hexmap.StageSmall, b.Map.PlantAt(c).Stage)
		assert.Equal(t, alice, b.Map.PlantAt(c).Owner, "ownership unchanged")
	})

	t.Run("owner gated", func(t *testing.T) {
		for _, stage := range []hexmap.Stage{hexmap.StageSeed, hexmap.StageMedium, hexmap.StageLarge} {
			b := grow(t, NewBoard(), alice, c, stage)
			assert.False(t, LegalGrowPlant(b, c, bob))
			_, err := GrowPlant(b, c, bob)
			assert.ErrorIs(t, err, ErrIllegalGrowPlant)
		}
	})

	t.Run("large is terminal", func(t *testing.T) {
		b := grow(t, NewBoard(), alice, c, hexmap.StageLarge)
		assert.False(t, LegalGrowPlant(b, c, alice))
		_, err := GrowPlant(b, c, alice)
		assert.ErrorIs(t, err, ErrIllegalGrowPlant)
	})

	t.Run("empty cell", func(t *testing.T) {
		_, err := GrowPlant(NewBoard(), c, alice)
		assert.ErrorIs(t, err, ErrIllegalGrowPlant)
	})
}

func TestHarvest(t *testing.T) {
	c := hexmap.At(0, 0)

	t.Run("large owned plant", func(t *testing.T) {
		b := grow(t, NewBoard(), alice, c, hexmap.StageLarge)
		before, _ := b.Map.CellAt(c)

		require.True(t, LegalHarvest(b, c, alice))
		b, err := Harvest(b, alice, c)
		require.NoError(t, err)

		after, ok := b.Map.CellAt(c)
		require.True(t, ok)
		assert.Nil(t, after.Plant, "cell emptied")
		assert.Equal(t, before.Soil, after.Soil, "soil preserved")
	})

	t.Run("smaller stages", func(t *testing.T) {
		for _, stage := range []hexmap.Stage{hexmap.StageSeed, hexmap.StageSmall, hexmap.StageMedium} {
			b := grow(t, NewBoard(), alice, c, stage)
			assert.False(t, LegalHarvest(b, c, alice))
			_, err := Harvest(b, alice, c)
			assert.ErrorIs(t, err, ErrIllegalHarvest, "stage %v", stage)
		}
	})

	t.Run("wrong owner", func(t *testing.T) {
		b := grow(t, NewBoard(), alice, c, hexmap.StageLarge)
		_, err := Harvest(b, bob, c)
		assert.ErrorIs(t, err, ErrIllegalHarvest)
	})
}

func TestMoveSun(t *testing.T) {
	b := NewBoard()
	start := b.Sun
	seen := map[hexmap.Direction]bool{start: true}
	for i := 0; i < 5; i++ {
		b = MoveSun(b)
		assert.False(t, seen[b.Sun], "directions distinct until the cycle closes")
		seen[b.Sun] = true
	}
	b = MoveSun(b)
	assert.Equal(t, start, b.Sun, "period six")
}

func TestBoard_valueSemantics(t *testing.T) {
	before := NewBoard()
	c := hexmap.At(2, 0)
	after, err := PlantSeed(before, alice, c)
	require.NoError(t, err)

	assert.Nil(t, before.Map.PlantAt(c), "operations never mutate their input")
	assert.NotNil(t, after.Map.PlantAt(c))

	moved := MoveSun(before)
	assert.NotEqual(t, before.Sun, moved.Sun)
}
