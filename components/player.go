package components

import (
	"github.com/yohamta/donburi"
)

// JumpData is recomputed every tick by the grounded check. Buffer is reserved for
// input buffering and currently unused.
type JumpData struct {
	CanJump  bool
	Strength float64
	Buffer   int
}

// RunData drives horizontal input. Only Speed is read; Acceleration and
// Deceleration are carried for a future ramped run.
type RunData struct {
	Speed        float64
	Acceleration float64
	Deceleration float64
}

// AccumulatorData counts collected coins. It only ever grows.
type AccumulatorData struct {
	Coins int
}

var (
	Jump        = donburi.NewComponentType[JumpData]()
	Run         = donburi.NewComponentType[RunData]()
	Accumulator = donburi.NewComponentType[AccumulatorData]()
)
