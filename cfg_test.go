package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/racetrack/render"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racetrack.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"canvasWidth: 400\ncanvasHeight: 800\ngridRows: 20\ngridCols: 10\nstartingTrack: demo\nsaveName: demo\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.CanvasWidth)
	assert.Equal(t, 800, cfg.CanvasHeight)
	assert.Equal(t, 20, cfg.GridRows)
	assert.Equal(t, 10, cfg.GridCols)
	assert.Equal(t, "demo", cfg.StartingTrack)
	assert.Equal(t, "demo", cfg.SaveName)
	assert.Equal(t, len(render.Palette), cfg.PaletteSize, "unset palette size falls back")
}

func TestLoadConfigBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racetrack.yml")
	require.NoError(t, os.WriteFile(path, []byte("canvasWidth: [oops"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{PaletteSize: 99, GridRows: -1}.normalized()

	assert.Equal(t, len(render.Palette), cfg.PaletteSize)
	assert.Equal(t, DefaultConfig().GridRows, cfg.GridRows)
	assert.Equal(t, DefaultConfig().CanvasWidth, cfg.CanvasWidth)
}
