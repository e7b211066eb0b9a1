package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbeddedMatchesDefaults(t *testing.T) {
	t.Cleanup(Reset)

	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
}

func TestLoadCustomOverlaysDefaults(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  worldwidth: 30\ngame:\n  coinstowin: 3\n  seed: 42\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.World.WorldWidth)
	assert.Equal(t, 12, cfg.World.WorldHeight, "untouched keys keep defaults")
	assert.Equal(t, 3, cfg.Game.CoinsToWin)
	assert.Equal(t, uint64(42), cfg.Game.Seed)

	// Installed globally
	assert.Equal(t, 30, World.WorldWidth)
	assert.Equal(t, 3, Game.CoinsToWin)
}

func TestLoadMissingCustomFile(t *testing.T) {
	t.Cleanup(Reset)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  tilesize: 0\nphysics:\n  tps: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tilesize")
	assert.Contains(t, err.Error(), "tps")
}

func TestScreenSize(t *testing.T) {
	w := WorldConfig{TileSize: 16, WorldWidth: 20, WorldHeight: 12, WorldScale: 3}
	assert.Equal(t, 960, w.ScreenWidth())
	assert.Equal(t, 576, w.ScreenHeight())
}

func TestInputBindingsOverlay(t *testing.T) {
	cfg, err := Parse([]byte("input:\n  jump: [W, ArrowUp]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"W", "ArrowUp"}, cfg.Input.Keys(ActionJump))
	assert.Equal(t, []string{"A"}, cfg.Input.Keys(ActionMoveLeft))
	assert.Nil(t, cfg.Input.Keys(ActionCount))
}
