package systems

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	gravityQuery      = store.NewQuery(components.Velocity, components.Gravity)
	accelerationQuery = store.NewQuery(components.Velocity, components.Acceleration)
	moveQuery         = store.NewQuery(components.Velocity, components.Move)
)

// UpdateGravity pulls every falling body down by its own gravity.
func UpdateGravity(ecs *ecs.ECS) {
	gravityQuery.Each(ecs.World, func(e *donburi.Entry) {
		velocity := components.Velocity.Get(e)
		velocity.Y += components.Gravity.Get(e).G
	})
}

// UpdateAcceleration adds acceleration to velocity and caps each axis from above.
func UpdateAcceleration(ecs *ecs.ECS) {
	accelerationQuery.Each(ecs.World, func(e *donburi.Entry) {
		velocity := components.Velocity.Get(e)
		accel := components.Acceleration.Get(e)

		velocity.X = gamemath.ClampMax(velocity.X+accel.X, cfg.Physics.MaxSpeed)
		velocity.Y = gamemath.ClampMax(velocity.Y+accel.Y, cfg.Physics.MaxSpeed)
	})
}

// UpdateMove turns fractional velocity into whole-pixel deltas, carrying the
// rounding error into the next tick.
func UpdateMove(ecs *ecs.ECS) {
	moveQuery.Each(ecs.World, func(e *donburi.Entry) {
		velocity := components.Velocity.Get(e)
		move := components.Move.Get(e)

		move.X, move.XR = gamemath.SplitRemainder(move.XR, velocity.X)
		move.Y, move.YR = gamemath.SplitRemainder(move.YR, velocity.Y)
	})
}
