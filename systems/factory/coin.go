package factory

import (
	"image"

	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns a collectable at (x, y). Its real position is chosen by the
// first respawn.
func CreateCoin(ecs *ecs.ECS, x, y int) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	scale := cfg.World.WorldScale
	half := cfg.World.TileSize / 2

	components.Collectable.SetValue(coin, components.CollectableData{
		X: x,
		Y: y,
		W: cfg.Coin.Width * scale,
		H: cfg.Coin.Height * scale,
	})
	components.Debug.SetValue(coin, components.DebugData{Toggle: cfg.Debug.Overlay})

	// Coin sprites live on a half-tile grid.
	srcX := cfg.Coin.SpriteCol * half
	srcY := cfg.Coin.SpriteRow * half
	components.Visual.SetValue(coin, components.VisualData{
		Texture: TextureAtlas,
		Src:     image.Rect(srcX, srcY, srcX+half, srcY+half),
		Dst:     image.Rect(x, y, x+half*scale, y+half*scale),
	})

	return coin
}
