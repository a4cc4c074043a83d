package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsPlain  bool
	flagRunsPlayer string
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run history",
	Long: `Browse finished runs, longest first.

A run is recorded when a running pattern is reset or the game is quit,
provided at least one generation was computed.

Examples:
  life runs                  # Interactive board
  life runs --plain          # Plain text table
  life runs --player alice   # Recent runs of one player
  life runs --clear          # Delete the history`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain text table instead of the interactive board")
	runsCmd.Flags().StringVar(&flagRunsPlayer, "player", "", "Only show runs of this player (implies --plain)")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	if flagRunsPlayer != "" {
		runs, err := store.PlayerRuns(flagRunsPlayer, flagRunsLimit)
		if err != nil {
			return fmt.Errorf("retrieving runs: %w", err)
		}
		fmt.Fprintf(out, "Recent Runs - %s\n\n", flagRunsPlayer)
		printRuns(out, runs)
		return nil
	}

	if !flagRunsPlain {
		width, height := 100, 30 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunRunsBoard(store, flagRunsLimit, width, height)
	}

	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	fmt.Fprintln(out, "Longest Runs")
	fmt.Fprintln(out)
	printRuns(out, runs)

	if len(runs) > 0 {
		if stats, err := store.Stats(); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Runs: %d  Longest: %d  Avg: %.1f  Biggest peak: %d\n",
				stats.Runs, stats.LongestRun, stats.AvgGenerations, stats.BiggestPeak)
		}
	}
	return nil
}

// printRuns writes runs as a plain text table.
func printRuns(w io.Writer, runs []storage.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'life' and press Enter to start your first run!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %6s  %5s  %5s  %5s  %8s  %s\n",
		"#", "Player", "Gens", "Start", "Peak", "End", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %6s  %5s  %5s  %5s  %8s  %s\n",
		"-", "------", "----", "-----", "----", "---", "----", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-12s  %6d  %5d  %5d  %5d  %8s  %s\n",
			i+1, r.Player, r.Generations, r.InitialPopulation, r.PeakPopulation,
			r.FinalPopulation, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
