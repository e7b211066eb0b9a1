package input

import (
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/store"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	jumperQuery = store.NewQuery(components.Jump, components.Velocity)
	runnerQuery = store.NewQuery(components.Run, components.Velocity)
	debugQuery  = store.NewQuery(components.Debug)
)

// Controls applies the polled actions to the world. Nil hooks are skipped.
type Controls struct {
	Respawn          func() error
	ToggleFullscreen func()
	Logger           *log.Logger
}

// Apply reacts to this frame's input. Movement keys act on press and release
// edges only; holding a key does not re-apply it.
func (c Controls) Apply(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	w := e.World

	if in.Action(cfg.ActionJump).JustPressed {
		jumperQuery.Each(w, jump)
	}

	left := in.Action(cfg.ActionMoveLeft)
	right := in.Action(cfg.ActionMoveRight)
	runnerQuery.Each(w, func(e *donburi.Entry) {
		run(e, left, right)
	})

	if in.Action(cfg.ActionToggleDebug).JustPressed {
		debugQuery.Each(w, func(e *donburi.Entry) {
			d := components.Debug.Get(e)
			d.Toggle = !d.Toggle
			c.logger().Debug("debug toggled", "entity", e.Entity().Id(), "on", d.Toggle)
		})
	}

	if in.Action(cfg.ActionToggleFullscreen).JustPressed && c.ToggleFullscreen != nil {
		c.ToggleFullscreen()
	}

	if in.Action(cfg.ActionRespawnCoins).JustPressed && c.Respawn != nil {
		if err := c.Respawn(); err != nil {
			c.logger().Error("respawn failed", "error", err)
		}
	}
}

func (c Controls) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

func jump(e *donburi.Entry) {
	j := components.Jump.Get(e)
	if j.CanJump {
		components.Velocity.Get(e).Y = -j.Strength
	}
}

// run sets horizontal speed from the move keys. A key pressed while the
// opposite one is held is ignored; releasing a key hands control back to the
// other one if it is still held. Left is handled first, so it wins when both
// keys go down on the same frame.
func run(e *donburi.Entry, left, right components.ActionState) {
	speed := components.Run.Get(e).Speed
	velocity := components.Velocity.Get(e)

	if left.JustPressed && (!right.Pressed || right.JustPressed) {
		velocity.X = -speed
		face(e, false)
	}
	if right.JustPressed && !left.Pressed {
		velocity.X = speed
		face(e, true)
	}

	if left.JustReleased {
		if right.Pressed {
			velocity.X = speed
		} else {
			velocity.X = 0
		}
	}
	if right.JustReleased {
		if left.Pressed {
			velocity.X = -speed
		} else {
			velocity.X = 0
		}
	}
}

// face mirrors the sprite; the atlas art looks left.
func face(e *donburi.Entry, flip bool) {
	if e.HasComponent(components.Visual) {
		components.Visual.Get(e).Flip = flip
	}
}
