package systems

import (
	"testing"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/store"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func (tw *testWorld) jumper(x, y, w, h int) *donburi.Entry {
	e := tw.mover(x, y, w, h)
	store.Attach(e, components.Jump, components.JumpData{Strength: 12})
	return e
}

func TestUpdateGroundedRecomputesEveryTick(t *testing.T) {
	for _, hash := range []bool{false, true} {
		tw := newTestWorld(t, hash)
		tw.wall(0, 200, 96, 48)
		j := tw.jumper(20, 176, 12, 24)

		UpdateGrounded(tw.ecs)
		assert.True(t, components.Jump.Get(j).CanJump, "hash=%v", hash)

		// One pixel of air is enough to lose the ground.
		tw.push(j, 0, -1)
		UpdateCollisions(tw.ecs)
		UpdateGrounded(tw.ecs)
		assert.False(t, components.Jump.Get(j).CanJump, "hash=%v", hash)
	}
}

func TestUpdateGroundedOverlapsOnlyWithOthers(t *testing.T) {
	tw := newTestWorld(t, true)
	j := tw.jumper(20, 20, 12, 24)
	components.Jump.Get(j).CanJump = true

	UpdateGrounded(tw.ecs)

	assert.False(t, components.Jump.Get(j).CanJump)
}

func TestUpdateGroundStop(t *testing.T) {
	tw := newTestWorld(t, true)
	tw.wall(0, 200, 96, 48)
	resting := tw.mover(20, 190, 10, 10)
	falling := tw.mover(60, 100, 10, 10)
	components.Velocity.SetValue(resting, components.VelocityData{X: 3, Y: 4})
	components.Velocity.SetValue(falling, components.VelocityData{Y: 4})

	UpdateGroundStop(tw.ecs)

	assert.Zero(t, components.Velocity.Get(resting).Y)
	assert.Equal(t, 3.0, components.Velocity.Get(resting).X)
	assert.Equal(t, 4.0, components.Velocity.Get(falling).Y)
}

func TestUpdateHeadbounce(t *testing.T) {
	tw := newTestWorld(t, true)
	tw.wall(0, 100, 96, 48)
	bumped := tw.mover(20, 148, 10, 10)
	free := tw.mover(60, 160, 10, 10)
	components.Velocity.SetValue(bumped, components.VelocityData{Y: -12})
	components.Velocity.SetValue(free, components.VelocityData{Y: -12})

	UpdateHeadbounce(tw.ecs)

	assert.Zero(t, components.Velocity.Get(bumped).Y)
	assert.Equal(t, -12.0, components.Velocity.Get(free).Y)
}
