package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/store"
	"github.com/stretchr/testify/assert"
)

func TestUpdateGravity(t *testing.T) {
	tw := newTestWorld(t, false)
	body := store.Create(tw.ecs.World, components.Velocity, components.Gravity)
	components.Gravity.SetValue(body, components.GravityData{G: 0.5})
	floating := store.Create(tw.ecs.World, components.Velocity)

	UpdateGravity(tw.ecs)
	UpdateGravity(tw.ecs)

	assert.InDelta(t, 1.0, components.Velocity.Get(body).Y, 1e-9)
	assert.Zero(t, components.Velocity.Get(floating).Y)
}

func TestUpdateAccelerationCapsFromAbove(t *testing.T) {
	tw := newTestWorld(t, false)
	limit := cfg.Physics.MaxSpeed

	fast := store.Create(tw.ecs.World, components.Velocity, components.Acceleration)
	components.Velocity.SetValue(fast, components.VelocityData{X: limit - 1, Y: 2})
	components.Acceleration.SetValue(fast, components.AccelerationData{X: 5, Y: 0.25})

	falling := store.Create(tw.ecs.World, components.Velocity, components.Acceleration)
	components.Velocity.SetValue(falling, components.VelocityData{X: -40, Y: -40})

	UpdateAcceleration(tw.ecs)

	assert.Equal(t, limit, components.Velocity.Get(fast).X)
	assert.InDelta(t, 2.25, components.Velocity.Get(fast).Y, 1e-9)

	// Negative speeds are not bounded.
	assert.Equal(t, -40.0, components.Velocity.Get(falling).X)
	assert.Equal(t, -40.0, components.Velocity.Get(falling).Y)
}

func TestUpdateMoveCarriesRemainder(t *testing.T) {
	tw := newTestWorld(t, false)
	e := store.Create(tw.ecs.World, components.Velocity, components.Move)
	components.Velocity.SetValue(e, components.VelocityData{X: 0.5, Y: -0.25})

	sumX, sumY := 0, 0
	for range 8 {
		UpdateMove(tw.ecs)
		m := components.Move.Get(e)
		sumX += m.X
		sumY += m.Y
	}

	assert.Equal(t, 4, sumX)
	assert.Equal(t, -2, sumY)
}
