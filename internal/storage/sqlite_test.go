package storage

import (
	"fmt"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
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

func TestSaveAndRetrieveRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []struct {
		id         string
		difficulty string
		score      int
	}{
		{"r1", "easy", 210},
		{"r2", "easy", 340},
		{"r3", "easy", 120},
		{"r4", "hard", 500},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r.id, r.difficulty, r.score, 5); err != nil {
			t.Fatalf("SaveRound(%s) failed: %v", r.id, err)
		}
	}

	easy, err := store.TopRounds("easy", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(easy) != 3 {
		t.Fatalf("Expected 3 easy rounds, got %d", len(easy))
	}
	if easy[0].Score != 340 || easy[1].Score != 210 || easy[2].Score != 120 {
		t.Errorf("Rounds not sorted by score: %v", easy)
	}
	if easy[0].Shots != 5 {
		t.Errorf("Shots = %d, expected 5", easy[0].Shots)
	}

	hard, err := store.TopRounds("hard", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard round, got %d", len(hard))
	}
}

func TestDuplicateRoundIDRejected(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound("dup", "easy", 100, 5); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound("dup", "easy", 200, 5); err == nil {
		t.Error("SaveRound() with a duplicate round_id should fail")
	}
}

func TestTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(fmt.Sprintf("r%d", i), "normal", (i+1)*100, 5)
	}

	rounds, err := store.TopRounds("normal", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 500 || rounds[1].Score != 400 || rounds[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestShotHistory(t *testing.T) {
	store := openTestStore(t)

	shots := []ShotEntry{
		{RoundID: "r1", Difficulty: "easy", Ring: 1, Points: 100, Radial: 0.05},
		{RoundID: "r1", Difficulty: "easy", Ring: 3, Points: 55, Radial: 0.5},
		{RoundID: "r1", Difficulty: "easy", Reason: "Timeout"},
		{RoundID: "r2", Difficulty: "easy", Ring: 5, Points: 10, Radial: 1.1},
	}
	for _, e := range shots {
		if err := store.SaveShot(e); err != nil {
			t.Fatalf("SaveShot() failed: %v", err)
		}
	}

	history, err := store.RoundShots("r1")
	if err != nil {
		t.Fatalf("RoundShots() failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("Expected 3 shots for r1, got %d", len(history))
	}
	if history[0].Ring != 1 || history[1].Ring != 3 {
		t.Errorf("Shots not in firing order: %v", history)
	}
	if history[2].Reason != "Timeout" {
		t.Errorf("Miss reason = %q, expected Timeout", history[2].Reason)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no rounds, got %d", high)
	}

	store.SaveRound("r1", "easy", 100, 5)
	store.SaveRound("r2", "easy", 300, 5)
	store.SaveRound("r3", "easy", 200, 5)

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStatsByDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("r1", "easy", 100, 5)
	store.SaveRound("r2", "easy", 300, 5)
	store.SaveRound("r3", "hard", 50, 5)

	stats, err := store.StatsByDifficulty()
	if err != nil {
		t.Fatalf("StatsByDifficulty() failed: %v", err)
	}
	easy := stats["easy"]
	if easy == nil {
		t.Fatal("Expected stats for easy")
	}
	if easy.Rounds != 2 || easy.HighScore != 300 || easy.AvgScore != 200 {
		t.Errorf("Easy stats = %+v", easy)
	}
	if stats["hard"].Rounds != 1 {
		t.Errorf("Hard stats = %+v", stats["hard"])
	}
}

func TestClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("r1", "easy", 100, 5)
	store.SaveRound("r2", "hard", 300, 5)
	store.SaveShot(ShotEntry{RoundID: "r1", Difficulty: "easy", Ring: 1, Points: 100})

	if err := store.ClearRounds("easy"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	easy, _ := store.TopRounds("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy rounds after clear, got %d", len(easy))
	}
	shots, _ := store.RoundShots("r1")
	if len(shots) != 0 {
		t.Errorf("Expected shot history cleared with rounds, got %d", len(shots))
	}
	hard, _ := store.TopRounds("hard", 10)
	if len(hard) != 1 {
		t.Error("Hard rounds should not be affected by clearing easy")
	}
}
