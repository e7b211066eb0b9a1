package components

import (
	"github.com/yohamta/donburi"
)

// LevelData describes the loaded level grid. The pixel extent of the world is
// Width*TileSize*Scale by Height*TileSize*Scale.
type LevelData struct {
	Name     string
	TileSize int
	Width    int
	Height   int
	Scale    int
}

// TileScale is the on-screen size of one tile in pixels.
func (l LevelData) TileScale() int {
	return l.TileSize * l.Scale
}

func (l LevelData) PixelWidth() int {
	return l.Width * l.TileScale()
}

func (l LevelData) PixelHeight() int {
	return l.Height * l.TileScale()
}

var Level = donburi.NewComponentType[LevelData]()
