package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zucenko/racetrack/render"
)

// Config is everything the builder window needs up front. A missing
// config file means defaults; a present but broken one is an error.
type Config struct {
	CanvasWidth   int    `yaml:"canvasWidth"`
	CanvasHeight  int    `yaml:"canvasHeight"`
	GridRows      int    `yaml:"gridRows"`
	GridCols      int    `yaml:"gridCols"`
	PaletteSize   int    `yaml:"paletteSize"`
	StartingTrack string `yaml:"startingTrack"`
	SaveName      string `yaml:"saveName"`
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:  600,
		CanvasHeight: 900,
		GridRows:     15,
		GridCols:     10,
		PaletteSize:  len(render.Palette),
		SaveName:     "your_map",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	if c.CanvasWidth < 1 {
		c.CanvasWidth = DefaultConfig().CanvasWidth
	}
	if c.CanvasHeight < 1 {
		c.CanvasHeight = DefaultConfig().CanvasHeight
	}
	if c.GridRows < 1 {
		c.GridRows = DefaultConfig().GridRows
	}
	if c.GridCols < 1 {
		c.GridCols = DefaultConfig().GridCols
	}
	if c.PaletteSize < 1 || c.PaletteSize > len(render.Palette) {
		c.PaletteSize = len(render.Palette)
	}
	if c.SaveName == "" {
		c.SaveName = DefaultConfig().SaveName
	}
	return c
}
