package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestSaveSolveAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSolve(SolveEntry{PuzzleID: "sliding", PiecesPerSide: 3, Moves: 20, Duration: 1500 * time.Millisecond, Seed: 42, Player: "alice"})
	if err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveSolve() id %q is not a UUID: %v", id, err)
	}

	best, err := store.BestSolve("sliding", 3)
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best == nil {
		t.Fatal("BestSolve() returned nil")
	}
	if best.ID != id || best.Moves != 20 || best.Duration != 1500*time.Millisecond || best.Seed != 42 || best.Player != "alice" {
		t.Errorf("BestSolve() = %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	if _, err := store.SaveSolve(SolveEntry{}); err == nil {
		t.Error("SaveSolve() without puzzle id should fail")
	}
}

func TestTopSolvesOrdering(t *testing.T) {
	store := openTestStore(t)

	solves := []SolveEntry{
		{PuzzleID: "sliding", PiecesPerSide: 3, Moves: 30, Duration: time.Second},
		{PuzzleID: "sliding", PiecesPerSide: 3, Moves: 18, Duration: 9 * time.Second},
		{PuzzleID: "sliding", PiecesPerSide: 3, Moves: 18, Duration: 4 * time.Second},
		{PuzzleID: "sliding", PiecesPerSide: 4, Moves: 5, Duration: time.Second},
		{PuzzleID: "flipping", PiecesPerSide: 3, Moves: 2, Duration: time.Second},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	top, err := store.TopSolves("sliding", 3, 10)
	if err != nil {
		t.Fatalf("TopSolves() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 solves for 3x3, got %d", len(top))
	}
	if top[0].Moves != 18 || top[0].Duration != 4*time.Second {
		t.Errorf("best = %+v, want 18 moves in 4s", top[0])
	}
	if top[1].Duration != 9*time.Second || top[2].Moves != 30 {
		t.Errorf("solves not in expected order: %+v", top)
	}

	all, err := store.TopSolves("sliding", 0, 2)
	if err != nil {
		t.Fatalf("TopSolves() failed: %v", err)
	}
	if len(all) != 2 || all[0].PiecesPerSide != 4 {
		t.Errorf("size 0 should include every grid, limited to 2: %+v", all)
	}
}

func TestBestSolveEmpty(t *testing.T) {
	store := openTestStore(t)
	best, err := store.BestSolve("lightsout", 5)
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestSolve() on empty store = %+v, want nil", best)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{PuzzleID: "connector", PiecesPerSide: 5, Moves: 10, Duration: 8 * time.Second})
	store.SaveSolve(SolveEntry{PuzzleID: "connector", PiecesPerSide: 5, Moves: 20, Duration: 3 * time.Second})
	store.SaveSolve(SolveEntry{PuzzleID: "lightsout", PiecesPerSide: 4, Moves: 7, Duration: time.Second})

	stats, err := store.Stats("connector")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Solves != 2 || stats.FewestMoves != 10 || stats.AvgMoves != 15 || stats.Fastest != 3*time.Second {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LastSolved.IsZero() {
		t.Error("LastSolved should be set")
	}

	empty, err := store.Stats("sliding")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Solves != 0 || !empty.LastSolved.IsZero() {
		t.Errorf("Stats() for unsolved puzzle = %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["lightsout"].Solves != 1 || all["connector"].FewestMoves != 10 {
		t.Errorf("AllStats() = %+v", all)
	}
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{PuzzleID: "sliding", PiecesPerSide: 3, Moves: 1})
	store.SaveSolve(SolveEntry{PuzzleID: "flipping", PiecesPerSide: 3, Moves: 1})

	if err := store.ClearSolves("sliding"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	sliding, _ := store.TopSolves("sliding", 0, 10)
	if len(sliding) != 0 {
		t.Errorf("Expected 0 sliding solves after clear, got %d", len(sliding))
	}
	flipping, _ := store.TopSolves("flipping", 0, 10)
	if len(flipping) != 1 {
		t.Error("Flipping solves should not be affected by clearing sliding")
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
