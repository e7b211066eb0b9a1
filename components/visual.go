package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// VisualData is everything the renderer needs: which texture, which region of it
// and where on screen. Dst is kept aligned with Spatial or Collectable each tick.
type VisualData struct {
	Texture string
	Src     image.Rectangle
	Dst     image.Rectangle
	Flip    bool
}

var Visual = donburi.NewComponentType[VisualData]()
