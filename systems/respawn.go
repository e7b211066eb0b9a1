package systems

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/store"
	"github.com/yohamta/donburi"
)

// ErrNoPlacement is returned when a collectable could not be placed within the
// attempt budget. The level is likely too crowded; callers decide whether to
// widen the budget or give up.
var ErrNoPlacement = errors.New("no legal placement found")

var collectableQuery = store.NewQuery(components.Collectable)

// RespawnCollectables moves every collectable in the world to a freshly sampled
// legal spot, using the world's Spawner and Level singletons.
func RespawnCollectables(w donburi.World) error {
	spawnerEntry, ok := components.Spawner.First(w)
	if !ok {
		return errors.New("respawn: no spawner in world")
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return errors.New("respawn: no level in world")
	}
	spawner := components.Spawner.Get(spawnerEntry)
	return Respawn(w, spawner.Rand, *components.Level.Get(levelEntry), spawner.MaxAttempts)
}

// Respawn relocates each collectable independently. A candidate origin is
// sampled on the half-tile lattice and accepted when its footprint overlaps no
// Spatial entity and it lies inside the level grid. maxAttempts <= 0 samples
// until a spot is found. A coin that cannot be placed keeps its old position.
func Respawn(w donburi.World, rng *rand.Rand, level components.LevelData, maxAttempts int) error {
	log := logger(w)
	tileScale := level.TileScale()

	var errs []error
	for e := range collectableQuery.Iter(w) {
		coin := components.Collectable.Get(e)

		x, y, attempts, ok := samplePlacement(w, rng, level, coin.W, coin.H, maxAttempts)
		if !ok {
			log.Error("coin could not be placed", "entity", e.Entity().Id(), "attempts", attempts)
			errs = append(errs, fmt.Errorf("collectable %d after %d attempts: %w", e.Entity().Id(), attempts, ErrNoPlacement))
			continue
		}

		coin.X, coin.Y = x, y
		log.Debug("coin spawned", "entity", e.Entity().Id(),
			"tileX", x/tileScale, "tileY", y/tileScale, "attempts", attempts)
	}
	return errors.Join(errs...)
}

func samplePlacement(w donburi.World, rng *rand.Rand, level components.LevelData, width, height, maxAttempts int) (x, y, attempts int, ok bool) {
	tileScale := level.TileScale()
	for maxAttempts <= 0 || attempts < maxAttempts {
		attempts++
		candidate := gamemath.Box{
			X: rng.IntN(2*level.Width+1) * tileScale / 2,
			Y: rng.IntN(2*level.Height+1) * tileScale / 2,
			W: width,
			H: height,
		}
		if legalPlacement(w, level, candidate) {
			return candidate.X, candidate.Y, attempts, true
		}
	}
	return 0, 0, attempts, false
}

// legalPlacement reports whether box lies inside the level grid and touches no
// Spatial entity.
func legalPlacement(w donburi.World, level components.LevelData, box gamemath.Box) bool {
	tileScale := level.TileScale()
	if box.X/tileScale >= level.Width || box.Y/tileScale >= level.Height {
		return false
	}
	for e := range spatialQuery.Iter(w) {
		if gamemath.Overlaps(box, components.Spatial.Get(e).Box(), gamemath.Zero) {
			return false
		}
	}
	return true
}
