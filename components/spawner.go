package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SpawnerData owns the generator used for coin placement. MaxAttempts bounds the
// placement search per coin; zero means keep sampling until a spot is found.
type SpawnerData struct {
	Rand        *rand.Rand
	MaxAttempts int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
