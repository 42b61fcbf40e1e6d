package services

// Performance scoring penalties. The time penalty saturates at maxTimePenalty
// once the guess takes timePenaltyWindow seconds or longer.
const (
	timePenaltyWindow = 30.0
	maxTimePenalty    = 30.0
	cluePenalty       = 10.0
	wrongPenalty      = 5.0
)

// CalculatePerformanceScore turns raw play telemetry into a score in [0,100].
// A loss scores exactly 0, no partial credit. A win starts at 100 and loses
// points for time taken, clues used and wrong attempts, clamped so stacked
// penalties can never push the score negative.
func CalculatePerformanceScore(guessTimeSeconds float64, cluesUsed, wrongAttempts int, isWon bool) float64 {
	if !isWon {
		return 0
	}

	t := guessTimeSeconds
	if t < 0 {
		t = 0
	}
	if t > timePenaltyWindow {
		t = timePenaltyWindow
	}

	score := 100.0
	score -= t / timePenaltyWindow * maxTimePenalty
	score -= cluePenalty * float64(cluesUsed)
	score -= wrongPenalty * float64(wrongAttempts)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
