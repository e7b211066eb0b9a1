package archetypes

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Visual,
		components.Spatial,
		components.Object,
		components.Velocity,
		components.Acceleration,
		components.Gravity,
		components.Move,
		components.Jump,
		components.Run,
		components.Accumulator,
		components.Debug,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Visual,
		components.Collectable,
		components.Debug,
	)
	// Decoration is drawn but never collides.
	Decoration = newArchetype(
		tags.Tile,
		components.Visual,
	)
	Wall = newArchetype(
		tags.Tile,
		components.Visual,
		components.Spatial,
		components.Object,
		components.Debug,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Game = newArchetype(
		components.Game,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
