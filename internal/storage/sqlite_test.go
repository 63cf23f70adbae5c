package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveScore("galaga", 1200, 3)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	_, err = store.SaveScore("galaga", 450, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	_, err = store.SaveScore("galaga", 3800, 6)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500, 2)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("galaga", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 3800 {
		t.Errorf("Expected highest score to be 3800, got %d", scores[0].Score)
	}
	if scores[0].Wave != 6 {
		t.Errorf("Expected wave 6 on the top entry, got %d", scores[0].Wave)
	}
	if scores[1].Score != 1200 {
		t.Errorf("Expected second score to be 1200, got %d", scores[1].Score)
	}
	if scores[2].Score != 450 {
		t.Errorf("Expected third score to be 450, got %d", scores[2].Score)
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveScore("galaga", (i+1)*100, i+1)
	}

	scores, err := store.TopScores("galaga", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreAndBestWave(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("galaga")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("galaga", 100, 1)
	store.SaveScore("galaga", 300, 2)
	store.SaveScore("galaga", 200, 5)

	high, err = store.HighScore("galaga")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	// Best wave can come from a lower-scoring run
	wave, err := store.BestWave("galaga")
	if err != nil {
		t.Fatalf("BestWave() failed: %v", err)
	}
	if wave != 5 {
		t.Errorf("Expected best wave of 5, got %d", wave)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("galaga", 100, 1)
	store.SaveScore("galaga", 200, 2)
	store.SaveScore("other", 300, 1)

	err = store.ClearScores("galaga")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("galaga", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other games should not be affected by the clear")
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("galaga", 100, 1)
	store.SaveScore("galaga", 300, 4)

	stats, err := store.GetGameStats("galaga")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestWave != 4 {
		t.Errorf("Expected best wave 4, got %d", stats.BestWave)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
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
