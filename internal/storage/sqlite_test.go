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

func mustSave(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult(%+v) failed: %v", r, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Score: 100, Moves: 40, MaxTile: 32})
	mustSave(t, store, Result{Score: 50, Moves: 20, MaxTile: 16})
	mustSave(t, store, Result{Player: "alice", Score: 200, Moves: 90, MaxTile: 64})

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	want := []int{200, 100, 50}
	for i, r := range results {
		if r.Score != want[i] {
			t.Errorf("results[%d].Score = %d, want %d", i, r.Score, want[i])
		}
	}

	top := results[0]
	if top.Player != "alice" || top.Moves != 90 || top.MaxTile != 64 {
		t.Errorf("top result = %+v, want alice/90 moves/64", top)
	}
	if results[1].Player != "local" {
		t.Errorf("empty player should be stored as local, got %q", results[1].Player)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTiesPreferFewerMoves(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Score: 300, Moves: 80})
	mustSave(t, store, Result{Score: 300, Moves: 60})

	results, err := store.TopResults(2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if results[0].Moves != 60 {
		t.Errorf("tie should go to fewer moves, got %d first", results[0].Moves)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, Result{Score: (i + 1) * 100})
	}

	results, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}

	// Non-positive limit falls back to ten.
	results, err = store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults(0) failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("TopResults(0) returned %d results, want 5", len(results))
	}
}

func TestStorePlayerResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Player: "alice", Score: 100})
	mustSave(t, store, Result{Player: "bob", Score: 900})
	mustSave(t, store, Result{Player: "alice", Score: 300})

	results, err := store.PlayerResults("alice", 10)
	if err != nil {
		t.Fatalf("PlayerResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results for alice, got %d", len(results))
	}
	if results[0].Score != 300 {
		t.Errorf("alice best = %d, want 300", results[0].Score)
	}
}

func TestStoreRejectsNegativeValues(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Score: -4}); err == nil {
		t.Error("negative score should be rejected")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	mustSave(t, store, Result{Score: 100})
	mustSave(t, store, Result{Score: 300})
	mustSave(t, store, Result{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Score: 100})
	mustSave(t, store, Result{Score: 200})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.AllResults()
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		mustSave(t, store, Result{Score: i * 10})
	}

	results, err := store.AllResults()
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	mustSave(t, store, Result{Score: 100, Moves: 10, MaxTile: 32})
	mustSave(t, store, Result{Score: 300, Moves: 30, MaxTile: 128})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestTile != 128 {
		t.Errorf("BestTile = %d, want 128", stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalMoves != 40 {
		t.Errorf("TotalMoves = %d, want 40", stats.TotalMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
