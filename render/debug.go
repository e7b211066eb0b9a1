package render

import (
	"image/color"
	"math"

	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// axisBar is the thickness of the position markers along the screen edges.
const axisBar = 5

var (
	staticDebugQuery = store.NewQuery(components.Spatial, components.Debug).Without(components.Velocity)
	coinDebugQuery   = store.NewQuery(components.Collectable, components.Debug)
	moverDebugQuery  = store.NewQuery(components.Spatial, components.Velocity, components.Debug)
)

// DrawDebug overlays collision data for every entity whose Debug toggle is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World

	staticDebugQuery.Each(w, func(e *donburi.Entry) {
		if !components.Debug.Get(e).Toggle {
			return
		}
		s := components.Spatial.Get(e)
		fillRect(screen, s.X, s.Y, s.W, s.H, cfg.UI.StaticColor)
	})

	coinDebugQuery.Each(w, func(e *donburi.Entry) {
		if !components.Debug.Get(e).Toggle {
			return
		}
		c := components.Collectable.Get(e)
		fillRect(screen, c.X, c.Y, c.W, c.H, cfg.UI.CoinColor)
	})

	moverDebugQuery.Each(w, func(e *donburi.Entry) {
		if !components.Debug.Get(e).Toggle {
			return
		}
		s := components.Spatial.Get(e)
		v := components.Velocity.Get(e)

		fillRect(screen, s.X, 0, s.W, axisBar, cfg.UI.XAxisColor)
		fillRect(screen, 0, s.Y, axisBar, s.H, cfg.UI.YAxisColor)
		fillRect(screen, s.X, s.Y, s.W, s.H, cfg.UI.BoxColor)

		x1, y1, x2, y2 := velocityLine(*s, *v, cfg.UI.VelocityLineScale)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, cfg.UI.VelocityColor, false)
	})
}

// velocityLine runs from the box centre along velocity times scale.
func velocityLine(s components.SpatialData, v components.VelocityData, scale float64) (x1, y1, x2, y2 int) {
	x1 = s.X + int(math.Round(float64(s.W)/2))
	y1 = s.Y + int(math.Round(float64(s.H)/2))
	x2 = int(math.Round(float64(x1) + v.X*scale))
	y2 = int(math.Round(float64(y1) + v.Y*scale))
	return x1, y1, x2, y2
}

func fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
