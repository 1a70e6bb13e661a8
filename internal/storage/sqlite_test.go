package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveRun(Run{Board: "24x24", Difficulty: "normal", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different board
	if _, err := store.SaveRun(Run{Board: "10x10", Score: 50}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("24x24", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Difficulty != "normal" {
		t.Errorf("difficulty = %q, expected normal", runs[0].Difficulty)
	}

	small, err := store.TopRuns("10x10", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 run for 10x10, got %d", len(small))
	}
}

func TestStoreRunFields(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Board:    "24x24",
		Score:    7,
		Steps:    321,
		Duration: 42 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("24x24", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	r := runs[0]
	if r.ID != id || r.Steps != 321 || r.Duration != 42*time.Second {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{Board: "b", Score: (i + 1) * 10})
	}

	runs, err := store.TopRuns("b", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopRuns("b", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("24x24")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveRun(Run{Board: "24x24", Score: 3})
	store.SaveRun(Run{Board: "24x24", Score: 9})
	store.SaveRun(Run{Board: "24x24", Score: 6})

	high, err = store.HighScore("24x24")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("24x24")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastRun.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Board: "24x24", Score: 2})
	store.SaveRun(Run{Board: "24x24", Score: 4})

	stats, err := store.Stats("24x24")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 4 || stats.AvgScore != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastRun.IsZero() {
		t.Error("last run should be set")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveRun(Run{Board: "24x24", Score: 11})

	runs, err := b.TopRuns("24x24", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("a new session should start empty, got %d runs", len(runs))
	}
}
