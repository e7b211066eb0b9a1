package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/fonts"
	"github.com/automoto/coinhop/input"
	"github.com/automoto/coinhop/render"
	"github.com/automoto/coinhop/sim"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// WorldScene plays a single run: input, then one simulation tick, then drawing.
type WorldScene struct {
	sim      *sim.Simulation
	bindings input.Bindings
	controls input.Controls
	hud      *render.HUD
	once     sync.Once
}

func NewWorldScene(s *sim.Simulation, bindings input.Bindings, logger *log.Logger) *WorldScene {
	ws := &WorldScene{sim: s, bindings: bindings}
	ws.controls = input.Controls{
		Respawn:          s.Respawn,
		ToggleFullscreen: toggleFullscreen,
		Logger:           logger,
	}
	return ws
}

func toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

// configure needs a running graphics context for the atlas texture.
func (ws *WorldScene) configure() {
	e := ws.sim.ECS()
	textures := render.NewTextures()
	ws.hud = render.NewHUD(fonts.Regular.Get())

	e.AddRenderer(cfg.Default, textures.DrawVisuals)
	e.AddRenderer(cfg.Default, render.DrawDebug)
	e.AddRenderer(cfg.Default, ws.hud.Draw)
}

// Update ends the game with ebiten.Termination once the run is won, or with the
// run's error if coin placement failed.
func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)

	e := ws.sim.ECS()
	input.Poll(e, ws.bindings)
	ws.controls.Apply(e)

	ws.sim.Tick()
	ws.hud.Update(e)

	if err := ws.sim.Err(); err != nil {
		return err
	}
	if ws.sim.Won() {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	if ws.hud == nil {
		return
	}
	ws.sim.ECS().Draw(screen)
}
