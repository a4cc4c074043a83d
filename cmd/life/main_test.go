package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// resetFlags restores the flag globals that a previous command may have set.
func resetFlags() {
	flagConfig = ""
	flagDBPath = storage.DefaultPath
	flagConfigDefault = false
	flagRunsLimit = 20
	flagRunsPlain = false
	flagRunsPlayer = ""
	flagRunsClear = false
	flagSpeed = ""
	flagFPS = 0
	flagBlock = 0
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func seedRuns(t *testing.T, path string, reports ...core.RunReport) {
	t.Helper()
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	for _, r := range reports {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
}

func TestConfigDefault(t *testing.T) {
	out, err := execute(t, "config", "--default")
	if err != nil {
		t.Fatalf("config --default: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("config --default did not print the embedded defaults:\n%s", out)
	}
}

func TestConfigEffective(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	writeFile(t, path, "zoom:\n  min_block: 2\n  max_block: 8\n  default_block: 8\nwindow:\n  width: 640\n  height: 480\n")

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"max_block: 8", "default_block: 8", "width: 640", "frame_rate: 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	writeFile(t, path, "zoom:\n  min_block: 3\n")

	if _, err := execute(t, "config", "--config", path); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestRunsPlain(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	seedRuns(t, db,
		core.RunReport{Player: "alice", InitialPopulation: 3, Generations: 12, PeakPopulation: 3, FinalPopulation: 3, Duration: 3 * time.Second},
		core.RunReport{Player: "bob", InitialPopulation: 5, Generations: 40, PeakPopulation: 9, FinalPopulation: 0, Duration: 8 * time.Second},
	)

	out, err := execute(t, "--db", db, "runs", "--plain")
	if err != nil {
		t.Fatalf("runs --plain: %v", err)
	}

	bob := strings.Index(out, "bob")
	alice := strings.Index(out, "alice")
	if bob < 0 || alice < 0 {
		t.Fatalf("runs output missing players:\n%s", out)
	}
	if bob > alice {
		t.Errorf("expected the longest run first:\n%s", out)
	}
	if !strings.Contains(out, "Runs: 2  Longest: 40") {
		t.Errorf("runs output missing stats:\n%s", out)
	}
}

func TestRunsPlainEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	out, err := execute(t, "--db", db, "runs", "--plain")
	if err != nil {
		t.Fatalf("runs --plain: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunsPlayer(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	seedRuns(t, db,
		core.RunReport{Player: "alice", Generations: 12},
		core.RunReport{Player: "bob", Generations: 40},
	)

	out, err := execute(t, "--db", db, "runs", "--player", "alice")
	if err != nil {
		t.Fatalf("runs --player: %v", err)
	}
	if !strings.Contains(out, "alice") || strings.Contains(out, "bob") {
		t.Errorf("expected only alice's runs:\n%s", out)
	}
}

func TestRunsClear(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	seedRuns(t, db, core.RunReport{Player: "alice", Generations: 12})

	if _, err := execute(t, "--db", db, "runs", "--clear"); err != nil {
		t.Fatalf("runs --clear: %v", err)
	}

	out, err := execute(t, "--db", db, "runs", "--plain")
	if err != nil {
		t.Fatalf("runs --plain: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("expected empty history after clear:\n%s", out)
	}
}

func TestSSHPort(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23235", "23235"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}

	for _, tt := range tests {
		if got := sshPort(tt.addr); got != tt.expected {
			t.Errorf("sshPort(%q) = %q, expected %q", tt.addr, got, tt.expected)
		}
	}
}
