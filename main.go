// coinhop is a single-screen platformer: run and jump around a tile level and
// collect coins until the target is reached.
//
// Usage:
//
//	coinhop                 - Play in a window
//	coinhop sim --ticks N   - Run headless for N ticks and print the result
//	coinhop levels          - List embedded levels
//
// Global flags:
//
//	--config <path> - YAML file overlaid on the built-in config
//	--level <name>  - Level file, embedded or on disk
//	--seed <value>  - Coin placement seed (0 = from the clock)
//	--tps <rate>    - Simulation ticks per second
//	--debug         - Debug overlay on and debug logging
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/coinhop/assets"
	cfg "github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/fonts"
	"github.com/automoto/coinhop/input"
	"github.com/automoto/coinhop/scenes"
	"github.com/automoto/coinhop/sim"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagLevel  string
	flagSeed   uint64
	flagTPS    int
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "coinhop",
	Short:        "Collect coins in a single-screen platformer",
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ~/.coinhop/config.yaml, then ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file name (default from config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Coin placement seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Ticks per second (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay and log at debug level")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup loads config, applies flag overrides and builds the logger and level.
func setup() (*log.Logger, assets.Level, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinhop",
	})

	if _, err := cfg.Load(flagConfig); err != nil {
		return logger, assets.Level{}, err
	}
	if flagLevel != "" {
		cfg.World.Level = flagLevel
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagTPS > 0 {
		cfg.Physics.TPS = flagTPS
	}
	if flagDebug {
		cfg.Debug.Overlay = true
		cfg.Debug.LogLevel = "debug"
	}

	level, err := log.ParseLevel(cfg.Debug.LogLevel)
	if err != nil {
		return logger, assets.Level{}, fmt.Errorf("debug.loglevel: %w", err)
	}
	logger.SetLevel(level)

	lvl, err := assets.LoadLevel(cfg.World.Level, cfg.World.WorldWidth, cfg.World.WorldHeight)
	if err != nil {
		return logger, assets.Level{}, err
	}
	// .tmx maps carry their own grid size.
	cfg.World.WorldWidth, cfg.World.WorldHeight = lvl.Width, lvl.Height
	return logger, lvl, nil
}

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.bounds.Dx(), g.bounds.Dy()
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, level, err := setup()
	if err != nil {
		return err
	}

	bindings, err := input.Resolve(cfg.Input)
	if err != nil {
		return fmt.Errorf("input bindings: %w", err)
	}
	if err := fonts.LoadDefaults(cfg.UI.HUDFontSize); err != nil {
		return err
	}

	s, err := sim.New(sim.Options{Level: level, Seed: cfg.Game.Seed, Logger: logger})
	if err != nil {
		return err
	}

	width, height := cfg.World.ScreenWidth(), cfg.World.ScreenHeight()

	ebiten.SetWindowTitle(cfg.World.Name)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(cfg.World.Fullscreen)
	ebiten.SetTPS(cfg.Physics.TPS)

	g := &Game{
		bounds: image.Rect(0, 0, width, height),
		scene:  scenes.NewWorldScene(s, bindings, logger),
	}
	return ebiten.RunGame(g)
}
