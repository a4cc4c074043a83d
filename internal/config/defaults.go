package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the built-in configuration:
// 2-16 pixel blocks, 0.2s per generation, 30 frames per second.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Zoom: ZoomConfig{
			MinBlock:     life.DefaultMinBlock,
			MaxBlock:     life.DefaultMaxBlock,
			DefaultBlock: life.DefaultDefaultBlock,
		},
		Timing: TimingConfig{
			GenerationPeriod: 200 * time.Millisecond,
			FrameRate:        30,
		},
		Display: DisplayConfig{
			PixelsPerColumn: 1,
			PixelsPerRow:    2,
			LiveRune:        "█",
			Grid:            true,
			LiveColor:       "bright_green",
			GridColor:       "gray",
		},
		Window: WindowConfig{
			Width:  768,
			Height: 576,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
