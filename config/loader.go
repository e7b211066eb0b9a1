package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Load overlays a YAML file on the built-in defaults and installs the result in
// the package-level sections.
// Search order: customPath -> ~/.coinhop/config.yaml -> ./configs/config.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse embedded config: %w", err)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return install(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return install(cfg, userCfgPath)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "config.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config configs/config.yaml: %w", err)
		}
		return install(cfg, "configs/config.yaml")
	}

	return install(cfg, "embedded")
}

// Parse overlays data on the built-in defaults without installing the result.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func install(cfg Config, source string) (Config, error) {
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", source, err)
	}
	Apply(cfg)
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.World.TileSize <= 0 {
		errs = append(errs, errors.New("world.tilesize must be positive"))
	}
	if cfg.World.WorldWidth <= 0 || cfg.World.WorldHeight <= 0 {
		errs = append(errs, errors.New("world.worldwidth and world.worldheight must be positive"))
	}
	if cfg.World.WorldScale <= 0 {
		errs = append(errs, errors.New("world.worldscale must be positive"))
	}
	if cfg.Player.CollisionWidth <= 0 || cfg.Player.CollisionHeight <= 0 {
		errs = append(errs, errors.New("player collision box must be positive"))
	}
	if cfg.Coin.Width <= 0 || cfg.Coin.Height <= 0 {
		errs = append(errs, errors.New("coin size must be positive"))
	}
	if cfg.Physics.TPS <= 0 {
		errs = append(errs, errors.New("physics.tps must be positive"))
	}
	if cfg.Game.CoinsToWin <= 0 {
		errs = append(errs, errors.New("game.coinstowin must be positive"))
	}
	if cfg.Game.RespawnAttempts < 0 {
		errs = append(errs, errors.New("game.respawnattempts must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinhop", filename)
}
