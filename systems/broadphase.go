package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var spatialQuery = store.NewQuery(components.Spatial)

// blockers answers "would this entity, nudged by probe, overlap another Spatial
// entity". With a space present candidates come from the spatial hash; the
// exact answer always comes from gamemath.Overlaps.
type blockers struct {
	world donburi.World
	space *resolv.Space
}

// newBlockers brings the broad phase in line with the current Spatial records.
func newBlockers(w donburi.World) blockers {
	b := blockers{world: w}
	if spaceEntry, ok := components.Space.First(w); ok {
		b.space = components.Space.Get(spaceEntry)
		spatialQuery.Each(w, b.sync)
	}
	return b
}

// sync registers e with the space, creating its proxy on first sight.
func (b blockers) sync(e *donburi.Entry) {
	if b.space == nil {
		return
	}
	s := components.Spatial.Get(e)

	obj := proxy(e)
	if obj == nil {
		obj = resolv.NewObject(float64(s.X), float64(s.Y), float64(s.W), float64(s.H), tags.ResolvSolid)
		obj.Data = e
		store.Attach(e, components.Object, components.ObjectData{Object: obj})
	}

	moved := obj.X != float64(s.X) || obj.Y != float64(s.Y) || obj.W != float64(s.W) || obj.H != float64(s.H)
	obj.X, obj.Y = float64(s.X), float64(s.Y)
	obj.W, obj.H = float64(s.W), float64(s.H)

	if obj.Space != b.space {
		b.space.Add(obj)
	} else if moved {
		obj.Update()
	}
}

func proxy(e *donburi.Entry) *resolv.Object {
	if !e.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(e).Object
}

// blocked reports whether e displaced by probe overlaps any other Spatial entity.
func (b blockers) blocked(e *donburi.Entry, probe gamemath.Vec) bool {
	return b.blockedBox(e, components.Spatial.Get(e).Box(), probe)
}

func (b blockers) blockedBox(self *donburi.Entry, box gamemath.Box, probe gamemath.Vec) bool {
	if obj := proxy(self); obj != nil && b.space != nil && obj.Space == b.space {
		// The proxy stays where it was registered while the entity is stepped, so
		// the probe is expressed relative to the registered position.
		dx := float64(box.X+probe.X) - obj.X
		dy := float64(box.Y+probe.Y) - obj.Y
		collision := obj.Check(dx, dy)
		if collision == nil {
			return false
		}
		for _, o := range collision.Objects {
			other, ok := o.Data.(*donburi.Entry)
			if !ok || other.Entity() == self.Entity() || !other.Valid() || !other.HasComponent(components.Spatial) {
				continue
			}
			if gamemath.Overlaps(box, components.Spatial.Get(other).Box(), probe) {
				return true
			}
		}
		return false
	}

	for other := range spatialQuery.Iter(b.world) {
		if other.Entity() == self.Entity() {
			continue
		}
		if gamemath.Overlaps(box, components.Spatial.Get(other).Box(), probe) {
			return true
		}
	}
	return false
}
