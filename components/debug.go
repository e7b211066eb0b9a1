package components

import "github.com/yohamta/donburi"

type DebugData struct {
	Toggle bool
}

var Debug = donburi.NewComponentType[DebugData]()
