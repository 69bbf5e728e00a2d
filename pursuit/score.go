package pursuit

import "time"

const (
	baseScore      = 10000
	penaltyPerSec  = 10
	penaltyPerStep = 5
)

// Score rates a finished game. A loss scores 0. A win scores
// (10000 - 10*seconds - 5*steps) * multiplier, truncated and floored at 0.
func Score(elapsed time.Duration, steps int, d Difficulty, won bool) int {
	if !won {
		return 0
	}
	timePenalty := int(elapsed.Seconds() * penaltyPerSec)
	raw := baseScore - timePenalty - steps*penaltyPerStep
	return max(int(float64(raw)*d.Multiplier()), 0)
}
