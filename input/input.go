// Package input turns keyboard state into actions and applies them to the world.
package input

import (
	"fmt"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it.
type Bindings [cfg.ActionCount][]ebiten.Key

// Resolve turns configured key names into ebiten keys.
func Resolve(c cfg.InputConfig) (Bindings, error) {
	var b Bindings
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		for _, name := range c.Keys(id) {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return b, fmt.Errorf("action %d: %w", id, err)
			}
			b[id] = append(b[id], key)
		}
	}
	return b, nil
}

// Poll swaps the input buffers and reads which bound keys are held.
func Poll(e *ecs.ECS, b Bindings) {
	in := getOrCreateInput(e)

	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	for id, keys := range b {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[id] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
