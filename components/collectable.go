package components

import (
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CollectableData is a pickup footprint kept apart from Spatial so coins never
// block, fall or get pushed.
type CollectableData struct {
	X, Y int
	W, H int
}

func (c CollectableData) Box() gamemath.Box {
	return gamemath.Box{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

var Collectable = donburi.NewComponentType[CollectableData]()
