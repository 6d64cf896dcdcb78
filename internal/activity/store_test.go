package activity_test

import (
	"os"
	"path/filepath"
	"testing"

	"logic-looper-backend/internal/activity"
	"logic-looper-backend/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := activity.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	m := models.ActivityMap{
		"2024-03-15": {Date: "2024-03-15", Solved: true, Score: 250, TimeTaken: 80, Difficulty: 2, HintsUsed: 1},
	}
	if err := store.SaveActivity(m); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := store.LoadActivity()
	if len(got) != 1 {
		t.Fatalf("loaded %d entries, want 1", len(got))
	}
	if got["2024-03-15"] != m["2024-03-15"] {
		t.Errorf("round trip mismatch: %+v", got["2024-03-15"])
	}
}

func TestFileStoreMissingData(t *testing.T) {
	store, err := activity.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if m := store.LoadActivity(); m == nil || len(m) != 0 {
		t.Errorf("empty dir should load an empty map, got %v", m)
	}
	if st := store.LoadState("2024-03-15"); st != nil {
		t.Errorf("missing state should load nil, got %+v", st)
	}
}

func TestFileStoreCorruptData(t *testing.T) {
	dir := t.TempDir()
	store, err := activity.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "activity.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state-2024-03-15.json"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if m := store.LoadActivity(); len(m) != 0 {
		t.Errorf("corrupt activity file should degrade to empty, got %v", m)
	}
	if st := store.LoadState("2024-03-15"); st != nil {
		t.Errorf("corrupt state file should degrade to nil, got %+v", st)
	}
}

func TestFileStoreStateScopedPerDate(t *testing.T) {
	store, err := activity.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.SaveState("2024-03-15", &models.GameState{TimerStarted: true, HintsUsed: 2}); err != nil {
		t.Fatal(err)
	}

	if st := store.LoadState("2024-03-15"); st == nil || st.HintsUsed != 2 {
		t.Errorf("state not persisted: %+v", st)
	}
	if st := store.LoadState("2024-03-16"); st != nil {
		t.Errorf("state leaked to another date: %+v", st)
	}
}

func TestFileStoreReset(t *testing.T) {
	dir := t.TempDir()
	store, err := activity.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.SaveActivity(models.ActivityMap{"2024-03-15": {Date: "2024-03-15", Solved: true}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveState("2024-03-15", &models.GameState{TimerStarted: true}); err != nil {
		t.Fatal(err)
	}

	// Unrelated files in the directory must survive the wipe.
	other := filepath.Join(dir, "token")
	if err := os.WriteFile(other, []byte("secret"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if m := store.LoadActivity(); len(m) != 0 {
		t.Errorf("activity survived reset: %v", m)
	}
	if st := store.LoadState("2024-03-15"); st != nil {
		t.Errorf("state survived reset: %+v", st)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("reset removed an unrelated file: %v", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := activity.NewMemoryStore()

	m := models.ActivityMap{"2024-03-15": {Date: "2024-03-15", Solved: true, Score: 100}}
	if err := store.SaveActivity(m); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's map after save must not affect the store.
	m["2024-03-16"] = models.DailyActivity{Date: "2024-03-16", Solved: true}
	if got := store.LoadActivity(); len(got) != 1 {
		t.Errorf("store shares the caller's map: %v", got)
	}

	// Mutating a loaded map must not affect later loads.
	loaded := store.LoadActivity()
	delete(loaded, "2024-03-15")
	if got := store.LoadActivity(); len(got) != 1 {
		t.Errorf("loaded map aliases the store: %v", got)
	}
}
