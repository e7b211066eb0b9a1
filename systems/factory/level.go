package factory

import (
	"math/rand/v2"

	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the grid dimensions of level. Tiles are spawned separately
// once the collision space exists.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Name:     level.Name,
		TileSize: cfg.World.TileSize,
		Width:    level.Width,
		Height:   level.Height,
		Scale:    cfg.World.WorldScale,
	})
	return entry
}

// CreateSpawner holds the generator used to place collectables.
func CreateSpawner(ecs *ecs.ECS, rng *rand.Rand, maxAttempts int) *donburi.Entry {
	entry := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(entry, components.SpawnerData{Rand: rng, MaxAttempts: maxAttempts})
	return entry
}

// CreateGame holds the run rules and logger.
func CreateGame(ecs *ecs.ECS, coinsToWin int, logger *log.Logger) *donburi.Entry {
	entry := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(entry, components.GameData{CoinsToWin: coinsToWin, Logger: logger})
	return entry
}
