package avoid

import (
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Player"},
		{"   ", "Player"},
		{" Ann ", "Ann"},
		{"abcdefghijklmnop", "abcdefghijkl"},
		{strings.Repeat("é", 20), strings.Repeat("é", 12)},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestLeaderboardKeepsTopFive(t *testing.T) {
	lb := NewLeaderboard(nil)
	if lb.Best() != 0 {
		t.Errorf("empty Best() = %d", lb.Best())
	}

	for i, score := range []int{5, 30, 10, 30, 1, 20, 15} {
		lb.Add(string(rune('a'+i)), score)
	}

	got := lb.Entries()
	want := []Entry{{"b", 30}, {"d", 30}, {"f", 20}, {"g", 15}, {"c", 10}}
	if len(got) != MaxLeaders {
		t.Fatalf("len = %d, expected %d", len(got), MaxLeaders)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if lb.Best() != 30 {
		t.Errorf("Best() = %d", lb.Best())
	}

	got[0].Score = 999
	if lb.Best() != 30 {
		t.Error("Entries should return a copy")
	}
}

func TestLeaderboardFromUnsortedSeed(t *testing.T) {
	lb := NewLeaderboard([]Entry{{"low", 1}, {"high", 9}, {"", 4}})
	got := lb.Entries()
	if got[0].Name != "high" || got[1].Name != DefaultName || got[2].Name != "low" {
		t.Errorf("seeded board not ranked: %v", got)
	}
}
