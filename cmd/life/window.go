package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Life in a desktop window sized by the window section of the config.

Controls:
  Click       - Toggle a cell (while editing)
  Enter       - Run the pattern; while running, clear and start over
  R           - Clear and start over
  M/-         - Smaller cells (on key release)
  P/=         - Bigger cells (on key release)
  Arrows      - Scroll the grid while held
  Q/Esc       - Quit

The window backend is only built with the ebiten build tag:
  go build -tags ebiten ./cmd/life`,
	Run: runWindow,
}

func init() {
	addPlayFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("life-window", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	g, err := game.New(cfg)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	runErr := gui.Run(g, store, cfg, playerName(), logger)

	if store != nil {
		store.Close()
	}

	if errors.Is(runErr, gui.ErrNoWindow) {
		fail("%v (rebuild with -tags ebiten)", runErr)
	}
	if runErr != nil {
		fail("running window: %v", runErr)
	}
}
