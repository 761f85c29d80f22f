package storage

import (
	"os"
	"path/filepath"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}

func TestStoreRecordResultKeepsTopFive(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{10, 50, 30, 70, 20, 60, 40} {
		if err := store.RecordResult(string(rune('A'+i)), score); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	entries, err := store.Leaderboard(0)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	want := []int{70, 60, 50, 40, 30}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Score != w {
			t.Errorf("entries[%d].Score = %d, want %d", i, entries[i].Score, w)
		}
	}
}

func TestStoreTiesKeepEarlierEntry(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"first", "second", "third", "fourth", "fifth", "sixth"} {
		if err := store.RecordResult(name, 100); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	entries, err := store.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != DefaultKeep {
		t.Fatalf("Expected %d entries, got %d", DefaultKeep, len(entries))
	}
	if entries[0].Name != "first" {
		t.Errorf("entries[0].Name = %q, want first", entries[0].Name)
	}
	for _, e := range entries {
		if e.Name == "sixth" {
			t.Error("Later tie should have been pruned")
		}
	}
}

func TestStoreLeaderboardLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordResult("test", (i+1)*100) //nolint:errcheck
	}

	entries, err := store.Leaderboard(3)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries with limit, got %d", len(entries))
	}
	if entries[0].Score != 500 || entries[1].Score != 400 || entries[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", entries)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.RecordResult("a", 100) //nolint:errcheck
	store.RecordResult("b", 300) //nolint:errcheck
	store.RecordResult("c", 200) //nolint:errcheck

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearLeaderboardKeepsRounds(t *testing.T) {
	store := openTestStore(t)

	store.RecordResult("a", 100)          //nolint:errcheck
	store.SaveRound(100, 30*time.Second) //nolint:errcheck

	if err := store.ClearLeaderboard(); err != nil {
		t.Fatalf("ClearLeaderboard() failed: %v", err)
	}
	entries, _ := store.Leaderboard(0)
	if len(entries) != 0 {
		t.Errorf("Expected empty leaderboard after clear, got %d", len(entries))
	}

	stats, err := store.RoundStats()
	if err != nil {
		t.Fatalf("RoundStats() failed: %v", err)
	}
	if stats.Rounds != 1 {
		t.Errorf("Round history should survive a clear, got %d rounds", stats.Rounds)
	}
}

func TestStoreRoundStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.RoundStats()
	if err != nil {
		t.Fatalf("RoundStats() failed: %v", err)
	}
	if stats.Rounds != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRound(10, 10*time.Second) //nolint:errcheck
	store.SaveRound(30, 20*time.Second) //nolint:errcheck

	stats, err = store.RoundStats()
	if err != nil {
		t.Fatalf("RoundStats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Rounds = %d, want 2", stats.Rounds)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.TotalTime != 30*time.Second {
		t.Errorf("TotalTime = %v, want 30s", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", now, now},
		{"sqlite string", "2024-05-01 12:30:00", now},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
