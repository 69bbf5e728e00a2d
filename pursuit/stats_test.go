package pursuit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazelab/pursuit"
)

func TestStats_Empty(t *testing.T) {
	s := pursuit.NewStats()
	sum := s.Summary()
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.WinRate)
	assert.False(t, sum.HasBest)
	assert.Empty(t, s.Leaderboard())
}

func TestStats_Record(t *testing.T) {
	s := pursuit.NewStats()
	s.Record(pursuit.Entry{Won: false, Elapsed: time.Second, Steps: 1})
	for i := 1; i <= 12; i++ {
		s.Record(pursuit.Entry{
			Won:     true,
			Elapsed: time.Duration(100-i) * time.Second,
			Steps:   20 + i,
			Score:   i * 100,
		})
	}

	sum := s.Summary()
	assert.Equal(t, 13, sum.Total)
	assert.Equal(t, 12, sum.Wins)
	assert.Equal(t, 1, sum.Losses)
	assert.InDelta(t, 12.0/13.0*100, sum.WinRate, 1e-9)
	assert.True(t, sum.HasBest)
	assert.Equal(t, 88*time.Second, sum.BestTime)
	assert.Equal(t, 21, sum.BestSteps)
	assert.Equal(t, 1200, sum.BestScore)

	lb := s.Leaderboard()
	assert.Len(t, lb, pursuit.LeaderboardSize)
	assert.Equal(t, 1200, lb[0].Score)
	assert.Equal(t, 300, lb[len(lb)-1].Score)
	for i := 1; i < len(lb); i++ {
		assert.GreaterOrEqual(t, lb[i-1].Score, lb[i].Score)
	}

	lb[0].Score = -1
	assert.Equal(t, 1200, s.Leaderboard()[0].Score)
}

// TestStats_LossesSkipRecords keeps the loss time out of the best-time record.
func TestStats_LossesSkipRecords(t *testing.T) {
	s := pursuit.NewStats()
	s.Record(pursuit.Entry{Won: true, Elapsed: 50 * time.Second, Steps: 30, Score: 500})
	s.Record(pursuit.Entry{Won: false, Elapsed: time.Second, Steps: 1})

	sum := s.Summary()
	assert.Equal(t, 50*time.Second, sum.BestTime)
	assert.Equal(t, 30, sum.BestSteps)
	assert.Len(t, s.Leaderboard(), 1)
	assert.InDelta(t, 50.0, sum.WinRate, 1e-9)
}

func TestStats_Concurrent(t *testing.T) {
	s := pursuit.NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Record(pursuit.Entry{Won: i%2 == 0, Score: i})
		}(i)
	}
	wg.Wait()

	sum := s.Summary()
	assert.Equal(t, 50, sum.Total)
	assert.Equal(t, 25, sum.Wins)
	assert.Equal(t, 48, s.Leaderboard()[0].Score)
}
