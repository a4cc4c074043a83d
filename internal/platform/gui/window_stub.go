//go:build !ebiten

package gui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Run always reports that the window build tag is missing.
func Run(*game.Game, *storage.Store, config.LifeConfig, string, *log.Logger) error {
	return ErrNoWindow
}
