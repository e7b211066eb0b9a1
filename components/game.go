package components

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// GameData is the run-wide state shared by all systems.
type GameData struct {
	CoinsToWin int
	Tick       int
	// Collected is bumped on every pickup so presentation layers can react.
	Collected int
	Err       error
	Logger    *log.Logger
}

var Game = donburi.NewComponentType[GameData]()
