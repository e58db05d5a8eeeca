package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, gameID string, score int, d time.Duration) {
	t.Helper()
	if _, err := store.SaveScore(gameID, score, d); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "shaperun", 42, 3*time.Second)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("shaperun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected persisted high score 42, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "shaperun", 100, 2*time.Second)
	mustSave(t, store, "shaperun", 50, time.Second)
	mustSave(t, store, "shaperun", 200, 4*time.Second+900*time.Millisecond)
	mustSave(t, store, "shaperun_endless", 500, 9*time.Second)

	scores, err := store.TopScores("shaperun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("Position %d: expected %d, got %d", i, w, scores[i].Score)
		}
		if scores[i].GameID != "shaperun" {
			t.Errorf("Position %d: unexpected game %q", i, scores[i].GameID)
		}
	}
	if scores[0].Duration != 4*time.Second {
		t.Errorf("Expected duration truncated to 4s, got %v", scores[0].Duration)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be parsed")
	}

	endless, err := store.TopScores("shaperun_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "shaperun", 100, 9*time.Second)
	mustSave(t, store, "shaperun", 100, 3*time.Second)

	scores, err := store.TopScores("shaperun", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Duration != 3*time.Second {
		t.Errorf("Expected the shorter run first, got %v", scores[0].Duration)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit limit", 3, 3},
		{"default limit", 0, DefaultLimit},
		{"negative limit", -1, DefaultLimit},
		{"limit above count", 50, 15},
	}

	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		mustSave(t, store, "test", (i+1)*100, 0)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("test", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("Expected %d scores, got %d", tt.want, len(scores))
			}
			if scores[0].Score != 1500 {
				t.Errorf("Expected best score first, got %d", scores[0].Score)
			}
		})
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{10, 30, 20} {
		mustSave(t, store, "shaperun", s, 0)
	}

	recent, err := store.RecentScores("shaperun", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 30 {
		t.Errorf("Expected newest first [20 30], got %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shaperun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "shaperun", 100, 0)
	mustSave(t, store, "shaperun", 300, 0)
	mustSave(t, store, "shaperun", 200, 0)

	high, err = store.HighScore("shaperun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("shaperun", -1, 0); err == nil {
		t.Error("Expected an error for a negative score")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "shaperun", 100, 0)
	mustSave(t, store, "shaperun", 200, 0)
	mustSave(t, store, "shaperun_endless", 300, 0)

	if err := store.ClearScores("shaperun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("shaperun", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("shaperun_endless", 10)
	if len(kept) != 1 {
		t.Errorf("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("shaperun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, "shaperun", 100, 2*time.Second)
	mustSave(t, store, "shaperun", 300, 6*time.Second)

	stats, err := store.GetGameStats("shaperun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.LongestRun != 6*time.Second || stats.TotalPlayed != 8*time.Second {
		t.Errorf("Unexpected durations: longest=%v total=%v", stats.LongestRun, stats.TotalPlayed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
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

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.shaperun/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".shaperun", "scores.db")) {
		t.Errorf("Unexpected expansion %q", got)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("Absolute path changed: %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{75 * time.Second, "1:15"},
		{61*time.Minute + 500*time.Millisecond, "61:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
