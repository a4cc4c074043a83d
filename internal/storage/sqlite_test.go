package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(player string, generations, peak int) core.RunReport {
	return core.RunReport{
		Player:            player,
		InitialPopulation: 5,
		Generations:       generations,
		PeakPopulation:    peak,
		FinalPopulation:   3,
		Duration:          time.Duration(generations) * 200 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(run("alice", 12, 9))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d, expected a positive id", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.Player != "alice" || r.InitialPopulation != 5 || r.Generations != 12 ||
		r.PeakPopulation != 9 || r.FinalPopulation != 3 {
		t.Errorf("RecentRuns()[0] = %+v", r)
	}
	if r.Duration != 2400*time.Millisecond {
		t.Errorf("Duration = %v, expected 2.4s", r.Duration)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, gens := range []int{30, 10, 50, 20, 40} {
		if _, err := store.SaveRun(run("bob", gens, gens)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Generations != 50 || runs[1].Generations != 40 || runs[2].Generations != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		store.SaveRun(run("carol", i, i))
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to id order.
	if runs[0].Generations != 3 || runs[2].Generations != 1 {
		t.Errorf("Runs not newest first: %v", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("alice", 1, 1))
	store.SaveRun(run("bob", 2, 2))
	store.SaveRun(run("alice", 3, 3))

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Player != "alice" {
			t.Errorf("PlayerRuns(alice) returned a run of %q", r.Player)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.LongestRun != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", stats)
	}

	store.SaveRun(run("alice", 10, 7))
	store.SaveRun(run("bob", 30, 4))
	store.SaveRun(run("alice", 20, 12))

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.LongestRun != 30 {
		t.Errorf("LongestRun = %d, expected 30", stats.LongestRun)
	}
	if stats.AvgGenerations != 20 {
		t.Errorf("AvgGenerations = %v, expected 20", stats.AvgGenerations)
	}
	if stats.TotalGenerations != 60 {
		t.Errorf("TotalGenerations = %d, expected 60", stats.TotalGenerations)
	}
	if stats.BiggestPeak != 12 {
		t.Errorf("BiggestPeak = %d, expected 12", stats.BiggestPeak)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("alice", 1, 1))
	store.SaveRun(run("bob", 2, 2))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		in       any
		expected time.Time
	}{
		{want, want},
		{"2024-05-06 07:08:09", want},
		{"not a time", time.Time{}},
		{nil, time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.expected) {
			t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}
