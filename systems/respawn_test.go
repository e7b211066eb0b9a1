package systems

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/automoto/coinhop/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestRespawnPlacesLegally(t *testing.T) {
	tw, _ := borderedWorld(t, true, rand.New(rand.NewPCG(21, 4)))
	tw.collector(100, 100)
	coins := []*donburi.Entry{tw.coin(0, 0), tw.coin(0, 0), tw.coin(0, 0)}

	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		require.NoError(t, Respawn(tw.ecs.World, rng, tw.level, 1000))
		for _, c := range coins {
			assertLegal(t, tw, components.Collectable.Get(c).Box())
		}
	}
}

func TestRespawnIsDeterministicForASeed(t *testing.T) {
	place := func() []components.CollectableData {
		tw, _ := borderedWorld(t, false, rand.New(rand.NewPCG(1, 1)))
		a, b := tw.coin(0, 0), tw.coin(0, 0)
		require.NoError(t, Respawn(tw.ecs.World, rand.New(rand.NewPCG(42, 42)), tw.level, 0))
		return []components.CollectableData{*components.Collectable.Get(a), *components.Collectable.Get(b)}
	}

	assert.Equal(t, place(), place())
}

func TestRespawnReportsNoPlacement(t *testing.T) {
	tw := newTestWorld(t, true)
	tw.wall(0, 0, tw.level.PixelWidth(), tw.level.PixelHeight())
	coin := tw.coin(7, 9)

	err := Respawn(tw.ecs.World, rand.New(rand.NewPCG(1, 1)), tw.level, 50)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPlacement))
	assert.Contains(t, err.Error(), "after 50 attempts")

	// The coin stays where it was.
	c := components.Collectable.Get(coin)
	assert.Equal(t, 7, c.X)
	assert.Equal(t, 9, c.Y)
}

func TestRespawnCollectablesUsesWorldSpawner(t *testing.T) {
	tw := newTestWorld(t, true)
	tw.wall(0, 0, tw.level.PixelWidth(), tw.level.PixelHeight())
	tw.coin(0, 0)

	err := RespawnCollectables(tw.ecs.World)
	assert.ErrorIs(t, err, ErrNoPlacement)
}

func TestUpdateCoinCollectionRecordsPlacementFailure(t *testing.T) {
	tw := newTestWorld(t, true)
	ts := tw.level.TileScale()
	// Leave only the collector's own cell open.
	tw.wall(ts, 0, tw.level.PixelWidth()-ts, tw.level.PixelHeight())
	tw.wall(0, ts, ts, tw.level.PixelHeight()-ts)
	c := tw.collector(0, 0)
	components.Spatial.Get(c).W, components.Spatial.Get(c).H = ts, ts
	tw.coin(0, 0)

	UpdateCoinCollection(tw.ecs)

	assert.Equal(t, 1, components.Accumulator.Get(c).Coins)
	assert.ErrorIs(t, gameOf(tw).Err, ErrNoPlacement)
}

func TestRespawnNeedsSpawnerAndLevel(t *testing.T) {
	assert.Error(t, RespawnCollectables(donburi.NewWorld()))
}
