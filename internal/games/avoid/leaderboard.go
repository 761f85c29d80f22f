package avoid

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLeaders is how many results the ranked list keeps.
	MaxLeaders = 5
	// MaxNameLen caps player names, in runes.
	MaxNameLen = 12
	// DefaultName replaces an empty name.
	DefaultName = "Player"
)

// Entry is one ranked result.
type Entry struct {
	Name  string
	Score int
}

// NormalizeName trims whitespace, substitutes DefaultName for an empty
// name and truncates to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	return name
}

// Leaderboard is an in-memory top-N list ordered by score descending.
// Ties keep insertion order.
type Leaderboard struct {
	entries []Entry
	limit   int
}

// NewLeaderboard creates a list seeded with entries (already ranked or not).
func NewLeaderboard(entries []Entry) *Leaderboard {
	lb := &Leaderboard{limit: MaxLeaders}
	for _, e := range entries {
		lb.Add(e.Name, e.Score)
	}
	return lb
}

// Add inserts a result and drops anything past the limit.
func (lb *Leaderboard) Add(name string, score int) {
	lb.entries = append(lb.entries, Entry{Name: NormalizeName(name), Score: max(0, score)})
	slices.SortStableFunc(lb.entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(lb.entries) > lb.limit {
		lb.entries = lb.entries[:lb.limit]
	}
}

// Entries returns a copy of the ranked list.
func (lb *Leaderboard) Entries() []Entry {
	return slices.Clone(lb.entries)
}

// Best returns the top score, or 0 when empty.
func (lb *Leaderboard) Best() int {
	if len(lb.entries) == 0 {
		return 0
	}
	return lb.entries[0].Score
}
