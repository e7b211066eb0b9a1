package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Coin   = donburi.NewTag().SetName("Coin")
	Tile   = donburi.NewTag().SetName("Tile")
)

// Resolv tags for the broad phase
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
