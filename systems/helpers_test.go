package systems

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/store"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLevel is a 10x8 grid of 48 pixel tiles.
func testLevel() assets.Level {
	return assets.Level{Name: "test", Width: 10, Height: 8}
}

type testWorld struct {
	ecs   *ecs.ECS
	level components.LevelData
}

// newTestWorld builds a world with a level, a game and a seeded spawner. With
// spatialHash false no resolv space is created and blockers fall back to the
// brute force scan.
func newTestWorld(t *testing.T, spatialHash bool) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateGame(e, 5, log.New(io.Discard))
	factory.CreateSpawner(e, rand.New(rand.NewPCG(1, 2)), 1000)
	levelEntry := factory.CreateLevel(e, testLevel())
	level := *components.Level.Get(levelEntry)
	if spatialHash {
		factory.CreateSpace(e, level.PixelWidth(), level.PixelHeight(), level.TileScale(), level.TileScale())
	}
	return &testWorld{ecs: e, level: level}
}

func (tw *testWorld) wall(x, y, w, h int) *donburi.Entry {
	return factory.CreateWall(tw.ecs, x, y, w, h, components.VisualData{})
}

func (tw *testWorld) mover(x, y, w, h int) *donburi.Entry {
	e := store.Create(tw.ecs.World, components.Spatial, components.Move, components.Velocity)
	components.Spatial.SetValue(e, components.SpatialData{X: x, Y: y, W: w, H: h})
	return e
}

func (tw *testWorld) push(e *donburi.Entry, dx, dy int) {
	m := components.Move.Get(e)
	m.X, m.Y = dx, dy
}

func (tw *testWorld) coin(x, y int) *donburi.Entry {
	return factory.CreateCoin(tw.ecs, x, y)
}

func spatialOf(e *donburi.Entry) components.SpatialData {
	return *components.Spatial.Get(e)
}

func gameOf(tw *testWorld) *components.GameData {
	return gameData(tw.ecs.World)
}
