package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/core"
)

// FileName is the name of the config file looked up in the config directories.
const FileName = "life.yaml"

// Load loads the Life configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (LifeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LifeConfig{}, errors.Wrapf(err, "[config.Load] failed to read config %s", customPath)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LifeConfig{}, errors.Wrapf(err, "[config.Load] invalid config %s", customPath)
		}
		return cfg, nil
	}

	// User config directory, then local configs directory.
	// Unreadable or invalid files there are skipped.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLifeYAML)
	if err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (LifeConfig, error) {
	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LifeConfig{}, errors.Wrap(err, "failed to parse yaml")
	}
	if err := Validate(cfg); err != nil {
		return LifeConfig{}, err
	}
	return cfg, nil
}

// Validate checks the whole configuration for consistency.
func Validate(cfg LifeConfig) error {
	if err := cfg.Engine().Validate(); err != nil {
		return errors.Wrap(err, "zoom")
	}

	if cfg.Timing.GenerationPeriod <= 0 {
		return errors.Errorf("timing: generation_period must be positive, got %v", cfg.Timing.GenerationPeriod)
	}
	if cfg.Timing.FrameRate <= 0 {
		return errors.Errorf("timing: frame_rate must be positive, got %d", cfg.Timing.FrameRate)
	}

	d := cfg.Display
	if d.PixelsPerColumn <= 0 || d.PixelsPerRow <= 0 {
		return errors.Errorf("display: pixels per character must be positive, got %dx%d", d.PixelsPerColumn, d.PixelsPerRow)
	}
	// Every block must cover whole characters.
	if cfg.Zoom.MinBlock%d.PixelsPerColumn != 0 || cfg.Zoom.MinBlock%d.PixelsPerRow != 0 {
		return errors.Errorf("display: min_block %d is not a multiple of %dx%d pixels per character",
			cfg.Zoom.MinBlock, d.PixelsPerColumn, d.PixelsPerRow)
	}
	for _, name := range []string{d.LiveColor, d.GridColor} {
		if _, ok := core.ParseColor(name); !ok {
			return errors.Errorf("display: unknown color %q", name)
		}
	}

	w := cfg.Window
	if w.Width <= 0 || w.Height <= 0 || w.Width%cfg.Zoom.MaxBlock != 0 || w.Height%cfg.Zoom.MaxBlock != 0 {
		return errors.Errorf("window: %dx%d must be positive multiples of max_block %d", w.Width, w.Height, cfg.Zoom.MaxBlock)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}
