package components

import (
	"github.com/yohamta/donburi"
)

// VelocityData is the per-tick speed in pixels.
type VelocityData struct {
	X, Y float64
}

// AccelerationData is added to velocity every tick.
type AccelerationData struct {
	X, Y float64
}

type GravityData struct {
	G float64
}

// MoveData holds the whole-pixel delta pending for this tick and the fractional
// remainder carried into the next one.
type MoveData struct {
	X, Y   int
	XR, YR float64
}

var (
	Velocity     = donburi.NewComponentType[VelocityData]()
	Acceleration = donburi.NewComponentType[AccelerationData]()
	Gravity      = donburi.NewComponentType[GravityData]()
	Move         = donburi.NewComponentType[MoveData]()
)
