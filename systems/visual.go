package systems

import (
	"image"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/store"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	spatialVisualQuery     = store.NewQuery(components.Visual, components.Spatial)
	collectableVisualQuery = store.NewQuery(components.Visual, components.Collectable)
)

// UpdateVisuals moves each sprite's destination rectangle onto the entity's
// authoritative position. Collectable wins when an entity has both.
func UpdateVisuals(ecs *ecs.ECS) {
	spatialVisualQuery.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spatial.Get(e)
		alignVisual(components.Visual.Get(e), s.X, s.Y)
	})
	collectableVisualQuery.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collectable.Get(e)
		alignVisual(components.Visual.Get(e), c.X, c.Y)
	})
}

// alignVisual moves Dst to (x, y) keeping its size.
func alignVisual(v *components.VisualData, x, y int) {
	v.Dst = v.Dst.Sub(v.Dst.Min).Add(image.Pt(x, y))
}
