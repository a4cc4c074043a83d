package main

import (
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSpeed string
	flagFPS   int
	flagBlock int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit a pattern and run it",
	Long: `Start the Game of Life in the terminal.

Controls:
  Click        - Toggle a cell (while editing)
  Enter        - Run the pattern; while running, clear and start over
  R            - Clear and start over
  M/-, P/+     - Smaller / bigger cells
  Arrows, hjkl - Scroll the grid
  ?            - Show all keys
  Ctrl+S       - Save a screenshot to ~/.life/screenshots
  Q/Ctrl+C     - Quit

Speed options:
  slow   - One generation every 500ms
  normal - One generation every 200ms
  fast   - One generation every 100ms
  turbo  - One generation every 50ms

Examples:
  life play
  life play --speed turbo
  life play --block 8 --fps 60
  life play --config ./my-life.yaml`,
	Run: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags that tune a session.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, turbo")
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate cap (0 = from config)")
	cmd.Flags().IntVar(&flagBlock, "block", 0, "Starting block size, a power of two (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alternate screen owns stdout, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger("life", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	g, err := game.New(cfg)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FrameRate,
		Player:   playerName(),
	}

	store := openStore(logger)
	runErr := tui.Run(g, store, rc, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// playerName returns the name recorded with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return core.DefaultConfig().Player
}
