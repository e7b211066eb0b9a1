package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func (tw *testWorld) collector(x, y int) *donburi.Entry {
	e := tw.mover(x, y, 12, 24)
	store.Attach(e, components.Accumulator)
	return e
}

func TestUpdateCoinCollection(t *testing.T) {
	tw := newTestWorld(t, true)
	tw.wall(0, 0, 48, 48)
	c := tw.collector(100, 100)
	touched := tw.coin(105, 110)
	elsewhere := tw.coin(300, 300)

	UpdateCoinCollection(tw.ecs)

	assert.Equal(t, 1, components.Accumulator.Get(c).Coins)
	assert.Equal(t, 1, gameOf(tw).Collected)
	require.NoError(t, gameOf(tw).Err)

	// Every coin is relocated, not only the touched one.
	for _, coin := range []*donburi.Entry{touched, elsewhere} {
		box := components.Collectable.Get(coin).Box()
		assertLegal(t, tw, box)
	}
	assert.NotEqual(t, components.CollectableData{X: 300, Y: 300, W: 12, H: 12}, *components.Collectable.Get(elsewhere))
}

func TestUpdateCoinCollectionIgnoresSpatialOfCoins(t *testing.T) {
	tw := newTestWorld(t, true)
	c := tw.collector(100, 100)
	coin := tw.coin(400, 300)
	// A stray footprint under the collector does not count as a coin.
	store.Attach(coin, components.Spatial, components.SpatialData{X: 100, Y: 100, W: 12, H: 12})

	UpdateCoinCollection(tw.ecs)

	assert.Zero(t, components.Accumulator.Get(c).Coins)
}

func TestIsWon(t *testing.T) {
	tw := newTestWorld(t, true)
	c := tw.collector(100, 100)

	components.Accumulator.Get(c).Coins = 4
	assert.False(t, IsWon(tw.ecs))

	components.Accumulator.Get(c).Coins = 5
	assert.True(t, IsWon(tw.ecs))
}

func TestIsWonWithoutGame(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	c := store.Create(w.World, components.Accumulator)
	components.Accumulator.Get(c).Coins = 100

	assert.False(t, IsWon(w))
}

func TestUpdateTick(t *testing.T) {
	tw := newTestWorld(t, false)
	for range 3 {
		UpdateTick(tw.ecs)
	}
	assert.Equal(t, 3, gameOf(tw).Tick)
}

func assertLegal(t *testing.T, tw *testWorld, box gamemath.Box) {
	t.Helper()
	ts := tw.level.TileScale()
	assert.Less(t, box.X/ts, tw.level.Width)
	assert.Less(t, box.Y/ts, tw.level.Height)
	assert.Zero(t, box.X%(ts/2))
	assert.Zero(t, box.Y%(ts/2))
	spatialQuery.Each(tw.ecs.World, func(e *donburi.Entry) {
		assert.False(t, gamemath.Overlaps(box, components.Spatial.Get(e).Box(), gamemath.Zero),
			"coin %+v overlaps %+v", box, *components.Spatial.Get(e))
	})
}
