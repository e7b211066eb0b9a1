package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var collectorQuery = store.NewQuery(components.Spatial, components.Accumulator)

// UpdateCoinCollection awards a coin to every collector touching a collectable
// footprint and then relocates all collectables, not only the one picked up.
func UpdateCoinCollection(ecs *ecs.ECS) {
	w := ecs.World
	game := gameData(w)

	collectorQuery.Each(w, func(collector *donburi.Entry) {
		box := components.Spatial.Get(collector).Box()

		for coin := range collectableQuery.Iter(w) {
			if !gamemath.Overlaps(box, components.Collectable.Get(coin).Box(), gamemath.Zero) {
				continue
			}

			acc := components.Accumulator.Get(collector)
			acc.Coins++
			logger(w).Info("coin collected", "entity", collector.Entity().Id(), "coins", acc.Coins)

			if game != nil {
				game.Collected++
			}
			if err := RespawnCollectables(w); err != nil && game != nil {
				game.Err = err
			}
		}
	})
}

// IsWon reports whether any collector has reached the coin target.
func IsWon(ecs *ecs.ECS) bool {
	game := gameData(ecs.World)
	if game == nil {
		return false
	}
	won := false
	components.Accumulator.Each(ecs.World, func(e *donburi.Entry) {
		if components.Accumulator.Get(e).Coins >= game.CoinsToWin {
			won = true
		}
	})
	return won
}

// UpdateTick advances the run's tick counter.
func UpdateTick(ecs *ecs.ECS) {
	if game := gameData(ecs.World); game != nil {
		game.Tick++
	}
}

func gameData(w donburi.World) *components.GameData {
	if e, ok := components.Game.First(w); ok {
		return components.Game.Get(e)
	}
	return nil
}
