package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	jumperQuery = store.NewQuery(components.Jump, components.Spatial)
	bodyQuery   = store.NewQuery(components.Velocity, components.Spatial)
)

// UpdateGrounded recomputes canJump from scratch: true only while something
// solid sits one pixel below.
func UpdateGrounded(ecs *ecs.ECS) {
	b := newBlockers(ecs.World)
	jumperQuery.Each(ecs.World, func(e *donburi.Entry) {
		components.Jump.Get(e).CanJump = b.blocked(e, gamemath.Down)
	})
}

// UpdateGroundStop cancels vertical velocity for anything resting on a surface.
func UpdateGroundStop(ecs *ecs.ECS) {
	b := newBlockers(ecs.World)
	bodyQuery.Each(ecs.World, func(e *donburi.Entry) {
		if b.blocked(e, gamemath.Down) {
			components.Velocity.Get(e).Y = 0
		}
	})
}

// UpdateHeadbounce cancels vertical velocity for anything touching a ceiling.
func UpdateHeadbounce(ecs *ecs.ECS) {
	b := newBlockers(ecs.World)
	bodyQuery.Each(ecs.World, func(e *donburi.Entry) {
		if b.blocked(e, gamemath.Up) {
			components.Velocity.Get(e).Y = 0
		}
	})
}
