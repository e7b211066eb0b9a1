// Package render draws the world: sprites, the debug overlay and the HUD.
package render

import (
	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/store"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	visualQuery = store.NewQuery(components.Visual)
)

// Textures holds every image a Visual may name.
type Textures map[string]*ebiten.Image

// NewTextures paints the atlas for the current config.
func NewTextures() Textures {
	atlas := assets.Atlas(assets.AtlasLayout{
		TileSize:  cfg.World.TileSize,
		PlayerCol: cfg.Player.SpriteCol,
		PlayerRow: cfg.Player.SpriteRow,
		CoinCol:   cfg.Coin.SpriteCol,
		CoinRow:   cfg.Coin.SpriteRow,
	})
	return Textures{factory.TextureAtlas: ebiten.NewImageFromImage(atlas)}
}

// DrawVisuals copies each Visual's source rectangle onto its destination in
// creation order, so tiles end up under the player and the coin.
func (t Textures) DrawVisuals(ecs *ecs.ECS, screen *ebiten.Image) {
	visualQuery.Each(ecs.World, func(e *donburi.Entry) {
		v := components.Visual.Get(e)
		tex, ok := t[v.Texture]
		if !ok || v.Src.Empty() || v.Dst.Empty() {
			return
		}

		drawOp.GeoM = placement(*v)
		screen.DrawImage(tex.SubImage(v.Src).(*ebiten.Image), drawOp)
	})
}

// placement maps the source rectangle onto Dst, mirrored when Flip is set.
func placement(v components.VisualData) ebiten.GeoM {
	var g ebiten.GeoM
	if v.Flip {
		g.Scale(-1, 1)
		g.Translate(float64(v.Src.Dx()), 0)
	}
	g.Scale(
		float64(v.Dst.Dx())/float64(v.Src.Dx()),
		float64(v.Dst.Dy())/float64(v.Src.Dy()),
	)
	g.Translate(float64(v.Dst.Min.X), float64(v.Dst.Min.Y))
	return g
}
