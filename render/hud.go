package render

import (
	"fmt"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudMargin = 8

// HUD shows the coin counter and briefly enlarges it after every pickup.
type HUD struct {
	face  text.Face
	pulse *gween.Tween
	scale float32
	seen  int
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: text.NewGoXFace(face), scale: 1}
}

// Update advances the pulse by one tick and starts a new one when the pickup
// counter moved.
func (h *HUD) Update(ecs *ecs.ECS) {
	if game, ok := components.Game.First(ecs.World); ok {
		if collected := components.Game.Get(game).Collected; collected != h.seen {
			h.seen = collected
			h.pulse = gween.New(float32(cfg.UI.HUDPulseScale), 1, cfg.UI.HUDPulseSeconds, ease.OutQuad)
		}
	}

	if h.pulse == nil {
		return
	}
	var done bool
	h.scale, done = h.pulse.Update(1 / float32(cfg.Physics.TPS))
	if done {
		h.pulse = nil
		h.scale = 1
	}
}

// Scale is the current text magnification.
func (h *HUD) Scale() float32 {
	return h.scale
}

func (h *HUD) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(h.scale), float64(h.scale))
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(cfg.UI.HUDTextColor)
	text.Draw(screen, h.label(ecs), h.face, op)
}

func (h *HUD) label(ecs *ecs.ECS) string {
	coins, target := 0, 0
	if e, ok := components.Accumulator.First(ecs.World); ok {
		coins = components.Accumulator.Get(e).Coins
	}
	if e, ok := components.Game.First(ecs.World); ok {
		target = components.Game.Get(e).CoinsToWin
	}
	return fmt.Sprintf("Coins %d/%d", coins, target)
}
