package factory

import (
	"image"

	"github.com/automoto/coinhop/archetypes"
	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TextureAtlas is the key of the sprite sheet every visual draws from.
const TextureAtlas = "atlas"

// CreateTile spawns a level cell. Collidable cells also get a footprint and a
// debug toggle; decoration is only drawn.
func CreateTile(ecs *ecs.ECS, tile assets.Tile) *donburi.Entry {
	size := cfg.World.TileSize
	screen := size * cfg.World.WorldScale

	src := image.Rect(tile.Kind.Col*size, tile.Kind.Row*size, (tile.Kind.Col+1)*size, (tile.Kind.Row+1)*size)
	dst := image.Rect(tile.Col*screen, tile.Row*screen, (tile.Col+1)*screen, (tile.Row+1)*screen)
	visual := components.VisualData{Texture: TextureAtlas, Src: src, Dst: dst}

	if !tile.Kind.Collidable {
		e := archetypes.Decoration.Spawn(ecs)
		components.Visual.SetValue(e, visual)
		return e
	}

	return CreateWall(ecs, dst.Min.X, dst.Min.Y, screen, screen, visual)
}

// CreateWall spawns a solid block.
func CreateWall(ecs *ecs.ECS, x, y, w, h int, visual components.VisualData) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	components.Visual.SetValue(wall, visual)
	components.Spatial.SetValue(wall, components.SpatialData{X: x, Y: y, W: w, H: h})
	components.Debug.SetValue(wall, components.DebugData{Toggle: cfg.Debug.Overlay})

	// Create collision object
	obj := resolv.NewObject(float64(x), float64(y), float64(w), float64(h), tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(w), float64(h)))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
