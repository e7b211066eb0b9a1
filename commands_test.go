package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/coinhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(cfg.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug:\n  loglevel: error\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config", path))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")
	require.NoError(t, err)

	assert.Contains(t, out, "level_1.txt")
	assert.Contains(t, out, "level_2.tmx")
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--ticks", "40", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "level: level_1.txt")
	assert.Contains(t, out, "ticks: 40")
	assert.Contains(t, out, "won:   false")
}

func TestSimCommandUnknownLevel(t *testing.T) {
	_, err := execute(t, "sim", "--level", "nope.txt")
	assert.Error(t, err)
}
