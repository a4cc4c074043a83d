package config

import (
	"time"

	"github.com/pkg/errors"
)

// SpeedPreset represents a named generation period.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// SpeedPresets lists the presets from slowest to fastest.
var SpeedPresets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedTurbo}

// PeriodForPreset returns the generation period for a preset.
func PeriodForPreset(preset SpeedPreset) (time.Duration, bool) {
	switch preset {
	case SpeedSlow:
		return 500 * time.Millisecond, true
	case SpeedNormal:
		return 200 * time.Millisecond, true
	case SpeedFast:
		return 100 * time.Millisecond, true
	case SpeedTurbo:
		return 50 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset sets the generation period from a preset name.
// An empty name leaves the config untouched.
func ApplySpeedPreset(cfg *LifeConfig, preset string) error {
	if preset == "" {
		return nil
	}
	period, ok := PeriodForPreset(SpeedPreset(preset))
	if !ok {
		return errors.Errorf("unknown speed %q (want one of %v)", preset, SpeedPresets)
	}
	cfg.Timing.GenerationPeriod = period
	return nil
}

// ApplyOverrides applies command-line overrides: a frame rate and a default
// block size. Zero values leave the config untouched. The result is validated.
func ApplyOverrides(cfg *LifeConfig, frameRate, block int) error {
	if frameRate > 0 {
		cfg.Timing.FrameRate = frameRate
	}
	if block > 0 {
		cfg.Zoom.DefaultBlock = block
	}
	return errors.Wrap(Validate(*cfg), "invalid overrides")
}
