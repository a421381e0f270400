package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRetrieveCompletions(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		level int
		name  string
		moves int
	}{
		{0, "First Hops", 2},
		{0, "First Hops", 5},
		{1, "Around the Bend", 8},
	}
	for _, s := range saves {
		if _, err := store.SaveCompletion(s.level, s.name, s.moves); err != nil {
			t.Fatalf("SaveCompletion() failed: %v", err)
		}
	}

	entries, err := store.Completions(10)
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, expected 3", len(entries))
	}
	// Newest first
	if entries[0].Level != 1 {
		t.Errorf("most recent entry level = %d, expected 1", entries[0].Level)
	}

	byLevel, err := store.LevelCompletions(0, 10)
	if err != nil {
		t.Fatalf("LevelCompletions() failed: %v", err)
	}
	if len(byLevel) != 2 {
		t.Fatalf("len(byLevel) = %d, expected 2", len(byLevel))
	}
	// Fewest moves first
	if byLevel[0].Moves != 2 {
		t.Errorf("best completion moves = %d, expected 2", byLevel[0].Moves)
	}
}

func TestBestMoves(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestMoves(3)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestMoves() on empty level = %d, expected 0", best)
	}

	store.SaveCompletion(3, "Zigzag", 9)
	store.SaveCompletion(3, "Zigzag", 6)
	store.SaveCompletion(3, "Zigzag", 7)

	best, err = store.BestMoves(3)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 6 {
		t.Errorf("BestMoves() = %d, expected 6", best)
	}
}

func TestCompletedLevels(t *testing.T) {
	store := openTestStore(t)

	store.SaveCompletion(2, "Leapfrog", 4)
	store.SaveCompletion(0, "First Hops", 2)
	store.SaveCompletion(2, "Leapfrog", 5)

	levels, err := store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if len(levels) != 2 || levels[0] != 0 || levels[1] != 2 {
		t.Errorf("CompletedLevels() = %v, expected [0 2]", levels)
	}
}

func TestClearCompletions(t *testing.T) {
	store := openTestStore(t)

	store.SaveCompletion(0, "First Hops", 2)
	if err := store.ClearCompletions(); err != nil {
		t.Fatalf("ClearCompletions() failed: %v", err)
	}

	entries, err := store.Completions(10)
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d after clear, expected 0", len(entries))
	}
}
