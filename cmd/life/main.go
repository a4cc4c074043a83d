// life is Conway's Game of Life on an unbounded grid, played in the terminal.
//
// Usage:
//
//	life                 - Edit a pattern and run it (same as 'life play')
//	life play            - Edit a pattern and run it
//	life serve           - Start SSH server for remote play
//	life runs            - Browse the run history
//	life window          - Open a desktop window (build with -tags ebiten)
//	life config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--db <path>          - Set database path (default: ~/.life/runs.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `Conway's Game of Life on an unbounded grid.

Click cells to seed a pattern, press Enter to run it, and watch it evolve.
Scroll with the arrow keys and zoom with m and p, while editing or running.

Available commands:
  play     - Edit and run a pattern (default)
  serve    - Start SSH server for remote play
  runs     - Browse the run history
  window   - Desktop window (requires -tags ebiten)
  config   - Print the effective configuration

Examples:
  life
  life play --speed fast
  life serve --ssh :2222
  life runs --plain`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the play overrides.
func loadConfig() (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.LifeConfig{}, err
	}
	if err := config.ApplySpeedPreset(&cfg, flagSpeed); err != nil {
		return config.LifeConfig{}, err
	}
	if err := config.ApplyOverrides(&cfg, flagFPS, flagBlock); err != nil {
		return config.LifeConfig{}, err
	}
	return cfg, nil
}

// newLogger creates the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned function closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the run database. Failures are logged and the game runs
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
