package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	runs := []RunRecord{
		{GameID: "kong", Player: "ann", Score: 1100, Level: 2, Ticks: 3000},
		{GameID: "kong", Player: "bob", Score: 300, Level: 1, Ticks: 900, EndReason: EndQuit},
		{GameID: "kong", Player: "ann", Score: 4200, Level: 4, Ticks: 12000},
		{GameID: "other", Player: "bob", Score: 9000, Level: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("kong", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 4200 || top[1].Score != 1100 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if top[0].Player != "ann" || top[0].Level != 4 || top[0].Ticks != 12000 {
		t.Errorf("Run fields not stored: %+v", top[0])
	}
	if top[1].EndReason != EndGameOver {
		t.Errorf("Expected default end reason %q, got %q", EndGameOver, top[1].EndReason)
	}
	if top[2].EndReason != EndQuit {
		t.Errorf("Expected end reason %q, got %q", EndQuit, top[2].EndReason)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(RunRecord{GameID: "kong", Score: (i + 1) * 100, Level: 1})
	}

	top, err := store.TopRuns("kong", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 900, 200} {
		store.SaveRun(RunRecord{GameID: "kong", Score: score, Level: 1})
	}

	recent, err := store.RecentRuns("kong", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 200 || recent[1].Score != 900 {
		t.Errorf("Expected newest first, got %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("kong")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "kong", Score: 100})
	store.SaveRun(RunRecord{GameID: "kong", Score: 300})
	store.SaveRun(RunRecord{GameID: "kong", Score: 200})

	high, err = store.HighScore("kong")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("kong")
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "kong", Score: 100, Level: 1, Ticks: 600})
	store.SaveRun(RunRecord{GameID: "kong", Score: 300, Level: 3, Ticks: 1800})

	stats, err := store.Stats("kong")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.BestLevel != 3 || stats.TotalTicks != 2400 {
		t.Errorf("Unexpected level/tick stats: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "kong", Score: 100})
	store.SaveRun(RunRecord{GameID: "kong", Score: 200})
	store.SaveRun(RunRecord{GameID: "other", Score: 300})

	// Clear only kong runs
	if err := store.ClearRuns("kong"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	kongRuns, _ := store.TopRuns("kong", 10)
	if len(kongRuns) != 0 {
		t.Errorf("Expected 0 kong runs after clear, got %d", len(kongRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Errorf("Other games should not be affected by clearing kong")
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
