package systems

import (
	"image"
	"testing"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/store"
	"github.com/stretchr/testify/assert"
)

func TestUpdateVisuals(t *testing.T) {
	tw := newTestWorld(t, false)

	body := tw.mover(30, 40, 12, 24)
	store.Attach(body, components.Visual, components.VisualData{Dst: image.Rect(0, 0, 24, 48), Flip: true})

	coin := tw.coin(0, 0)
	components.Collectable.Get(coin).X = 72
	components.Collectable.Get(coin).Y = 96

	// Collectable position wins over Spatial.
	both := tw.coin(0, 0)
	store.Attach(both, components.Spatial, components.SpatialData{X: 1, Y: 1, W: 4, H: 4})
	components.Collectable.Get(both).X = 200
	components.Collectable.Get(both).Y = 100

	UpdateVisuals(tw.ecs)

	assert.Equal(t, image.Rect(30, 40, 54, 88), components.Visual.Get(body).Dst)
	assert.True(t, components.Visual.Get(body).Flip)
	assert.Equal(t, image.Pt(72, 96), components.Visual.Get(coin).Dst.Min)
	assert.Equal(t, image.Pt(200, 100), components.Visual.Get(both).Dst.Min)
	assert.Equal(t, components.Visual.Get(coin).Dst.Size(), components.Visual.Get(both).Dst.Size())
}
