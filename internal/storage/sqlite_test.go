package storage

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/maze"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	run := Run{
		Seed: 7, Cols: 10, Rows: 10, Target: 20, Kind: "heart",
		CellsRaw: 14, CellsShaped: 20, CellsFinal: 31,
		MinDistance: 10, Distance: 11, MergeAttempts: 1, Bridged: 2,
		Fallbacks: []string{"expand-for-end", "trim"},
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a UUID id, got %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Seed != 7 || got.Kind != "heart" || got.CellsFinal != 31 || got.Distance != 11 {
		t.Errorf("Run not stored faithfully: %+v", got)
	}
	if len(got.Fallbacks) != 2 || got.Fallbacks[1] != "trim" {
		t.Errorf("Fallbacks = %v, expected [expand-for-end trim]", got.Fallbacks)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Kind: "blob"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() id = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", Kind: "blob"}); err == nil {
		t.Error("Saving a duplicate id should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing run, got %+v", got)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Seed: int64(i), Kind: "spiral"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("Runs not in expected order: %d %d %d", runs[0].Seed, runs[1].Seed, runs[2].Seed)
	}
}

func TestStoreFallbackStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Kind: "blob", Fallbacks: []string{"trim"}})
	store.SaveRun(Run{Kind: "donut", Fallbacks: []string{"trim", "farthest"}})
	store.SaveRun(Run{Kind: "donut"})

	stats, err := store.FallbackStats()
	if err != nil {
		t.Fatalf("FallbackStats() failed: %v", err)
	}
	if stats["trim"] != 2 || stats["farthest"] != 1 {
		t.Errorf("FallbackStats() = %v", stats)
	}
	if _, ok := stats["seeded"]; ok {
		t.Error("Unfired fallback should be absent")
	}
}

func TestStoreKindStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Kind: "heart", CellsFinal: 20, Distance: 10})
	store.SaveRun(Run{Kind: "heart", CellsFinal: 40, Distance: 20, Violations: 1})
	store.SaveRun(Run{Kind: "blob", CellsFinal: 10, Distance: 5})

	stats, err := store.AllKindStats()
	if err != nil {
		t.Fatalf("AllKindStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 kinds, got %d", len(stats))
	}

	heart := stats["heart"]
	if heart.Runs != 2 || heart.AvgCells != 30 || heart.AvgDistance != 15 || heart.Violations != 1 {
		t.Errorf("heart stats = %+v", heart)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Kind: "blob", Fallbacks: []string{"trim"}})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	stats, _ := store.FallbackStats()
	if len(stats) != 0 {
		t.Errorf("Expected no fallback stats after clear, got %v", stats)
	}
}

func TestNewRunFromMaze(t *testing.T) {
	m, err := maze.NewGrid(10, 10, 1, maze.Options{Rand: rand.New(rand.NewSource(3))})
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	run := NewRun(3, m, 0)

	if run.Cols != 10 || run.Rows != 10 || run.Target != 1 {
		t.Errorf("NewRun() dims = %dx%d target %d", run.Cols, run.Rows, run.Target)
	}
	if run.CellsFinal != 2 {
		t.Errorf("CellsFinal = %d, expected 2", run.CellsFinal)
	}
	found := false
	for _, f := range run.Fallbacks {
		if f == string(maze.FallbackSeeded) {
			found = true
		}
	}
	if !found {
		t.Errorf("Fallbacks = %v, expected %s", run.Fallbacks, maze.FallbackSeeded)
	}
}
