package pursuit

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LeaderboardSize caps the number of entries Stats keeps.
const LeaderboardSize = 10

// Entry is the record of one finished game.
type Entry struct {
	GameID     uuid.UUID
	At         time.Time
	Won        bool
	Elapsed    time.Duration
	Steps      int
	Difficulty Difficulty
	Score      int
}

// Summary is a point-in-time view of Stats.
type Summary struct {
	Total, Wins, Losses int
	WinRate             float64 // percent, 0 when no game was played
	BestTime            time.Duration
	BestSteps           int
	BestScore           int
	HasBest             bool // false until the first win; BestTime and BestSteps are unset before it
}

// Stats tallies results in memory. Safe for concurrent use.
type Stats struct {
	mu          sync.Mutex
	sum         Summary
	leaderboard []Entry
}

// NewStats returns an empty tally.
func NewStats() *Stats { return &Stats{} }

// Record adds a finished game. Only wins update the records and the leaderboard.
func (s *Stats) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sum.Total++
	if !e.Won {
		s.sum.Losses++
		s.updateRate()
		return
	}
	s.sum.Wins++
	s.updateRate()

	if !s.sum.HasBest || e.Elapsed < s.sum.BestTime {
		s.sum.BestTime = e.Elapsed
	}
	if !s.sum.HasBest || e.Steps < s.sum.BestSteps {
		s.sum.BestSteps = e.Steps
	}
	s.sum.BestScore = max(s.sum.BestScore, e.Score)
	s.sum.HasBest = true

	s.leaderboard = append(s.leaderboard, e)
	// stable, so the earlier of two equal scores ranks first
	slices.SortStableFunc(s.leaderboard, func(a, b Entry) int { return cmp.Compare(b.Score, a.Score) })
	if len(s.leaderboard) > LeaderboardSize {
		s.leaderboard = s.leaderboard[:LeaderboardSize]
	}
}

func (s *Stats) updateRate() {
	s.sum.WinRate = float64(s.sum.Wins) / float64(s.sum.Total) * 100
}

// Summary returns the current totals and records.
func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sum
}

// Leaderboard returns a copy of the top wins, highest score first.
func (s *Stats) Leaderboard() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.leaderboard)
}
