package components

import (
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpatialData is the authoritative pixel footprint of anything that takes up room
// and blocks movement.
type SpatialData struct {
	X, Y int
	W, H int
}

func (s SpatialData) Box() gamemath.Box {
	return gamemath.Box{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

var Spatial = donburi.NewComponentType[SpatialData]()
