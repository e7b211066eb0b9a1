// Package sim owns a single run: it builds the world from a level and advances
// the fixed system pipeline one tick at a time.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/systems"
	"github.com/automoto/coinhop/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a run. Zero values fall back to the loaded config.
type Options struct {
	Level  assets.Level
	Seed   uint64
	Logger *log.Logger
}

// Simulation is one run of the game.
type Simulation struct {
	ecs    *ecs.ECS
	game   *donburi.Entry
	player *donburi.Entry
	logger *log.Logger
	start  time.Time
}

// New builds the world for opts.Level and places the coin.
func New(opts Options) (*Simulation, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if len(opts.Level.Tiles) == 0 {
		return nil, errors.New("sim: level has no tiles")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := ecs.NewECS(donburi.NewWorld())
	s := &Simulation{ecs: e, logger: logger, start: time.Now()}

	s.game = factory.CreateGame(e, cfg.Game.CoinsToWin, logger)
	factory.CreateSpawner(e, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cfg.Game.RespawnAttempts)

	// Create the level entity first; its grid sizes the collision space.
	levelEntry := factory.CreateLevel(e, opts.Level)
	level := components.Level.Get(levelEntry)
	factory.CreateSpace(e, level.PixelWidth(), level.PixelHeight(), level.TileScale(), level.TileScale())

	for _, tile := range opts.Level.Tiles {
		factory.CreateTile(e, tile)
	}

	s.player = factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY)
	factory.CreateCoin(e, 0, 0)

	e.AddSystem(systems.UpdateGravity)
	e.AddSystem(systems.UpdateAcceleration)
	e.AddSystem(systems.UpdateMove)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateGrounded)
	e.AddSystem(systems.UpdateGroundStop)
	e.AddSystem(systems.UpdateHeadbounce)
	e.AddSystem(systems.UpdateCoinCollection)
	e.AddSystem(systems.UpdateVisuals)
	e.AddSystem(systems.UpdateTick)

	logger.Info("world created",
		"level", level.Name,
		"width", level.Width,
		"height", level.Height,
		"scale", level.TileScale(),
		"seed", seed,
	)

	if err := systems.RespawnCollectables(e.World); err != nil {
		return nil, fmt.Errorf("initial coin placement: %w", err)
	}
	systems.UpdateVisuals(e)

	return s, nil
}

// Tick runs the pipeline once. It is a no-op once the run is over.
func (s *Simulation) Tick() {
	if s.Done() {
		return
	}
	s.ecs.Update()

	if s.Won() {
		s.logger.Info("run won",
			"coins", s.Coins(),
			"ticks", s.Ticks(),
			"time", time.Since(s.start).Round(time.Millisecond),
		)
	}
}

// Won reports whether the coin target has been reached.
func (s *Simulation) Won() bool {
	return systems.IsWon(s.ecs)
}

// Done reports whether the run has ended, by winning or by error.
func (s *Simulation) Done() bool {
	return s.Won() || s.Err() != nil
}

// Err returns the failure that stopped the run, if any.
func (s *Simulation) Err() error {
	return components.Game.Get(s.game).Err
}

// Coins returns the player's collected coins.
func (s *Simulation) Coins() int {
	return components.Accumulator.Get(s.player).Coins
}

// Ticks returns the number of completed ticks.
func (s *Simulation) Ticks() int {
	return components.Game.Get(s.game).Tick
}

// Respawn relocates every coin on demand. A placement failure ends the run the
// same way a failed respawn after a pickup does.
func (s *Simulation) Respawn() error {
	if s.Done() {
		return s.Err()
	}
	err := systems.RespawnCollectables(s.ecs.World)
	if err != nil {
		s.logger.Error("manual respawn failed", "error", err)
		components.Game.Get(s.game).Err = err
		return err
	}
	systems.UpdateVisuals(s.ecs)
	return nil
}

// ECS exposes the world for input and rendering.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Player returns the player entity.
func (s *Simulation) Player() *donburi.Entry {
	return s.player
}
