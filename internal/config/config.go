// Package config provides YAML-based configuration loading and speed presets
// for the Game of Life frontends.
package config

import (
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

// LifeConfig contains all configuration for a Life session.
type LifeConfig struct {
	Zoom    ZoomConfig    `yaml:"zoom"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
}

// ZoomConfig defines the block size bounds.
type ZoomConfig struct {
	MinBlock     int `yaml:"min_block"`
	MaxBlock     int `yaml:"max_block"`
	DefaultBlock int `yaml:"default_block"`
}

// TimingConfig defines the generation period and the frame cap.
type TimingConfig struct {
	GenerationPeriod time.Duration `yaml:"generation_period"`
	FrameRate        int           `yaml:"frame_rate"`
}

// DisplayConfig defines how the terminal frontend draws the grid.
type DisplayConfig struct {
	PixelsPerColumn int    `yaml:"pixels_per_column"`
	PixelsPerRow    int    `yaml:"pixels_per_row"`
	LiveRune        string `yaml:"live_rune"`
	Grid            bool   `yaml:"grid"`
	LiveColor       string `yaml:"live_color"`
	GridColor       string `yaml:"grid_color"`
}

// WindowConfig defines the size of the desktop window frontend.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Engine returns the zoom bounds as an engine config.
func (c LifeConfig) Engine() life.Config {
	return life.Config{
		MinBlock:     c.Zoom.MinBlock,
		MaxBlock:     c.Zoom.MaxBlock,
		DefaultBlock: c.Zoom.DefaultBlock,
	}
}

// Rune returns the first rune of the configured live cell glyph.
func (d DisplayConfig) Rune() rune {
	for _, r := range d.LiveRune {
		return r
	}
	return '█'
}
