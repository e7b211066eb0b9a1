package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broad-phase proxy of a Spatial entity. Its Data field points
// back at the owning entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton spatial hash holding every Object.
var Space = donburi.NewComponentType[resolv.Space]()
