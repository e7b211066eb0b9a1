package factory

import (
	"image"

	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at (x, y) screen pixels.
func CreatePlayer(ecs *ecs.ECS, x, y int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	scale := cfg.World.WorldScale
	tile := cfg.World.TileSize
	w := cfg.Player.CollisionWidth * scale
	h := cfg.Player.CollisionHeight * scale

	components.Spatial.SetValue(player, components.SpatialData{X: x, Y: y, W: w, H: h})
	components.Gravity.SetValue(player, components.GravityData{G: cfg.Player.Gravity})
	components.Jump.SetValue(player, components.JumpData{Strength: cfg.Player.JumpStrength})
	components.Run.SetValue(player, components.RunData{
		Speed:        cfg.Player.RunSpeed,
		Acceleration: cfg.Player.RunAcceleration,
		Deceleration: cfg.Player.RunDeceleration,
	})
	components.Debug.SetValue(player, components.DebugData{Toggle: cfg.Debug.Overlay})

	// The sprite is half a tile wide and one tile tall.
	srcX := cfg.Player.SpriteCol * tile
	srcY := cfg.Player.SpriteRow * tile
	components.Visual.SetValue(player, components.VisualData{
		Texture: TextureAtlas,
		Src:     image.Rect(srcX, srcY, srcX+tile/2, srcY+tile),
		Dst:     image.Rect(x, y, x+tile*scale/2, y+tile*scale),
	})

	obj := resolv.NewObject(float64(x), float64(y), float64(w), float64(h), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(w), float64(h)))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
