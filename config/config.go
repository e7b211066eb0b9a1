package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// WorldConfig mirrors the original config file: window title plus level grid
// dimensions.
type WorldConfig struct {
	Name        string `yaml:"name"`
	TileSize    int    `yaml:"tilesize"`    // source tile size in the atlas
	WorldWidth  int    `yaml:"worldwidth"`  // level width in tiles
	WorldHeight int    `yaml:"worldheight"` // level height in tiles
	WorldScale  int    `yaml:"worldscale"`  // screen pixels per atlas pixel
	Fullscreen  bool   `yaml:"fullscreen"`
	Level       string `yaml:"level"` // embedded level file name
}

// ScreenWidth is the window width in pixels.
func (w WorldConfig) ScreenWidth() int {
	return w.TileSize * w.WorldScale * w.WorldWidth
}

func (w WorldConfig) ScreenHeight() int {
	return w.TileSize * w.WorldScale * w.WorldHeight
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX int `yaml:"spawnx"`
	SpawnY int `yaml:"spawny"`

	// Collision box in atlas pixels, multiplied by WorldScale
	CollisionWidth  int `yaml:"collisionwidth"`
	CollisionHeight int `yaml:"collisionheight"`

	// Atlas cell of the sprite, in tiles
	SpriteCol int `yaml:"spritecol"`
	SpriteRow int `yaml:"spriterow"`

	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jumpstrength"`

	RunSpeed        float64 `yaml:"runspeed"`
	RunAcceleration float64 `yaml:"runacceleration"`
	RunDeceleration float64 `yaml:"rundeceleration"`
}

// CoinConfig describes the collectable.
type CoinConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Atlas cell in half-tile units
	SpriteCol int `yaml:"spritecol"`
	SpriteRow int `yaml:"spriterow"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxSpeed float64 `yaml:"maxspeed"` // upper clamp per axis after acceleration
	TPS      int     `yaml:"tps"`      // fixed simulation ticks per second
}

// GameConfig holds the rules of a run.
type GameConfig struct {
	CoinsToWin      int    `yaml:"coinstowin"`
	RespawnAttempts int    `yaml:"respawnattempts"` // 0 = unbounded
	Seed            uint64 `yaml:"seed"`            // 0 = seed from the clock
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   `yaml:"overlay"` // initial value of every Debug toggle
	LogLevel string `yaml:"loglevel"`
}

// UIConfig contains overlay colours.
type UIConfig struct {
	StaticColor   color.NRGBA
	CoinColor     color.NRGBA
	XAxisColor    color.NRGBA
	YAxisColor    color.NRGBA
	BoxColor      color.NRGBA
	VelocityColor color.NRGBA
	HUDTextColor  color.NRGBA

	VelocityLineScale float64
	HUDFontSize       float64
	HUDPulseScale     float64
	HUDPulseSeconds   float32
}

// Config groups every section for file overlays.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Coin    CoinConfig    `yaml:"coin"`
	Physics PhysicsConfig `yaml:"physics"`
	Game    GameConfig    `yaml:"game"`
	Debug   DebugConfig   `yaml:"debug"`
	Input   InputConfig   `yaml:"input"`
}

// Global configuration instances
var (
	World   WorldConfig
	Player  PlayerConfig
	Coin    CoinConfig
	Physics PhysicsConfig
	Game    GameConfig
	Debug   DebugConfig
	Input   InputConfig
	UI      UIConfig
)

// Overlay colours. Alpha is not premultiplied so the debug boxes stay translucent.
var (
	White   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow  = color.NRGBA{R: 255, G: 255, B: 0, A: 100}
	Red     = color.NRGBA{R: 255, G: 0, B: 0, A: 100}
	Green   = color.NRGBA{R: 0, G: 255, B: 0, A: 100}
	Blue    = color.NRGBA{R: 0, G: 0, B: 255, A: 100}
	Magenta = color.NRGBA{R: 255, G: 0, B: 255, A: 100}
	Cyan    = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	Black   = color.NRGBA{A: 255}
)

func init() {
	Reset()
}

// Reset restores every section to its built-in default.
func Reset() {
	Apply(Defaults())

	UI = UIConfig{
		StaticColor:       Yellow,
		CoinColor:         Magenta,
		XAxisColor:        Red,
		YAxisColor:        Blue,
		BoxColor:          Green,
		VelocityColor:     Cyan,
		HUDTextColor:      White,
		VelocityLineScale: 3,
		HUDFontSize:       18,
		HUDPulseScale:     1.6,
		HUDPulseSeconds:   0.4,
	}
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		World: WorldConfig{
			Name:        "coinhop",
			TileSize:    16,
			WorldWidth:  20,
			WorldHeight: 12,
			WorldScale:  3,
			Level:       "level_1.txt",
		},
		Player: PlayerConfig{
			SpawnX:          250,
			SpawnY:          100,
			CollisionWidth:  4,
			CollisionHeight: 8,
			SpriteCol:       4,
			SpriteRow:       7,
			Gravity:         0.5,
			JumpStrength:    12,
			RunSpeed:        4,
			RunAcceleration: 2,
			RunDeceleration: 1,
		},
		Coin: CoinConfig{
			Width:     4,
			Height:    4,
			SpriteCol: 0,
			SpriteRow: 12,
		},
		Physics: PhysicsConfig{
			MaxSpeed: 16,
			TPS:      40, // 25ms per tick
		},
		Game: GameConfig{
			CoinsToWin:      5,
			RespawnAttempts: 10000,
		},
		Debug: DebugConfig{
			Overlay:  true,
			LogLevel: "info",
		},
		Input: defaultInput(),
	}
}

// Current snapshots the global sections.
func Current() Config {
	return Config{
		World:   World,
		Player:  Player,
		Coin:    Coin,
		Physics: Physics,
		Game:    Game,
		Debug:   Debug,
		Input:   Input,
	}
}

// Apply replaces the global sections with c.
func Apply(c Config) {
	World = c.World
	Player = c.Player
	Coin = c.Coin
	Physics = c.Physics
	Game = c.Game
	Debug = c.Debug
	Input = c.Input
}
