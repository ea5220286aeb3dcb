package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreRuns(t *testing.T) {
	store := openTemp(t)

	for _, r := range []RunResult{
		{Player: "ann", Steps: 420, Rank: "C", Stages: 4},
		{Player: "bob", Steps: 280, Rank: "S", Stages: 4},
		{Player: "cid", Steps: 333, Rank: "A", Stages: 4},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.BestRuns(2)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].Player != "bob" || runs[1].Player != "cid" {
		t.Errorf("runs not ordered by fewest steps: %+v", runs)
	}
	if runs[0].Rank != "S" || runs[0].Stages != 4 {
		t.Errorf("run fields not round-tripped: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	best, ok, err := store.BestSteps()
	if err != nil || !ok || best != 280 {
		t.Errorf("BestSteps() = %d, %v, %v; expected 280, true, nil", best, ok, err)
	}
}

func TestStoreBestStepsEmpty(t *testing.T) {
	store := openTemp(t)

	best, ok, err := store.BestSteps()
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("BestSteps() on empty store = %d, %v", best, ok)
	}
}

func TestStoreStageClears(t *testing.T) {
	store := openTemp(t)

	clears := []StageClear{
		{Player: "ann", StageID: "01", Steps: 12},
		{Player: "bob", StageID: "01", Steps: 8},
		{Player: "ann", StageID: "02", Steps: 30},
	}
	for _, c := range clears {
		if _, err := store.SaveStageClear(c); err != nil {
			t.Fatalf("SaveStageClear() failed: %v", err)
		}
	}

	best, err := store.BestStageClears("01", 10)
	if err != nil {
		t.Fatalf("BestStageClears() failed: %v", err)
	}
	if len(best) != 2 || best[0].Steps != 8 || best[0].Player != "bob" {
		t.Errorf("BestStageClears(01) = %+v", best)
	}

	stats, err := store.AllStageStats()
	if err != nil {
		t.Fatalf("AllStageStats() failed: %v", err)
	}
	s1 := stats["01"]
	if s1 == nil || s1.Clears != 2 || s1.BestSteps != 8 || s1.AvgSteps != 10 {
		t.Errorf("stats[01] = %+v", s1)
	}
	if stats["02"] == nil || stats["02"].Clears != 1 {
		t.Errorf("stats[02] = %+v", stats["02"])
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(RunResult{Player: "ann", Steps: 300, Rank: "A", Stages: 4})
	store.SaveStageClear(StageClear{Player: "ann", StageID: "01", Steps: 10})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	runs, _ := store.BestRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	stats, _ := store.AllStageStats()
	if len(stats) != 0 {
		t.Errorf("Expected no stage stats after clear, got %d", len(stats))
	}
}
