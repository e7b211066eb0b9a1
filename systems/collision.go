package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var moverQuery = store.NewQuery(components.Move, components.Spatial)

// UpdateCollisions commits each mover's pending delta one pixel at a time, Y axis
// first and X second. The first blocked step on an axis drops whatever is left of
// that axis' delta; there is no sliding or partial creep. Movers are then clamped
// inside the level.
func UpdateCollisions(ecs *ecs.ECS) {
	b := newBlockers(ecs.World)

	level, hasLevel := components.Level.First(ecs.World)

	moverQuery.Each(ecs.World, func(e *donburi.Entry) {
		spatial := components.Spatial.Get(e)
		move := components.Move.Get(e)

		// Axis order is observable at corners; keep Y before X.
		stepAxis(b, e, spatial, move.Y, false)
		stepAxis(b, e, spatial, move.X, true)
		move.X, move.Y = 0, 0

		if hasLevel {
			clampToLevel(spatial, components.Level.Get(level))
		}
		b.sync(e)
	})
}

// stepAxis walks up to delta pixels along one axis, stopping at the first blocked step.
func stepAxis(b blockers, e *donburi.Entry, spatial *components.SpatialData, delta int, horizontal bool) {
	sign := gamemath.Sign(delta)
	probe := gamemath.Vec{Y: sign}
	if horizontal {
		probe = gamemath.Vec{X: sign}
	}

	for delta != 0 {
		if b.blocked(e, probe) {
			return
		}
		if horizontal {
			spatial.X += sign
		} else {
			spatial.Y += sign
		}
		delta -= sign
	}
}

// clampToLevel keeps the box inside [0, width) x [0, height).
func clampToLevel(s *components.SpatialData, level *components.LevelData) {
	if s.X < 0 {
		s.X = 0
	}
	if s.Y < 0 {
		s.Y = 0
	}
	if w := level.PixelWidth(); s.X+s.W > w {
		s.X = w - s.W
	}
	if h := level.PixelHeight(); s.Y+s.H > h {
		s.Y = h - s.H
	}
}
