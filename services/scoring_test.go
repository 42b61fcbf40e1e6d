package services

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestCalculatePerformanceScoreLossIsZero(t *testing.T) {
	cases := []struct {
		guessTime     float64
		cluesUsed     int
		wrongAttempts int
	}{
		{0, 0, 0},
		{5, 1, 2},
		{10000, 3, 50},
	}
	for _, tc := range cases {
		if got := CalculatePerformanceScore(tc.guessTime, tc.cluesUsed, tc.wrongAttempts, false); got != 0 {
			t.Fatalf("loss with (%v,%d,%d) scored %v, want 0", tc.guessTime, tc.cluesUsed, tc.wrongAttempts, got)
		}
	}
}

func TestCalculatePerformanceScorePerfect(t *testing.T) {
	if got := CalculatePerformanceScore(0, 0, 0, true); got != 100 {
		t.Fatalf("instant flawless win scored %v, want exactly 100", got)
	}
}

func TestCalculatePerformanceScoreFastWin(t *testing.T) {
	// 100 - 5/30*30 - 0 - 0 = 95
	got := CalculatePerformanceScore(5, 0, 0, true)
	if math.Abs(got-95) > 1e-9 {
		t.Fatalf("5s flawless win scored %v, want 95", got)
	}
}

func TestCalculatePerformanceScoreSlowSloppyWin(t *testing.T) {
	// 100 - 30 - 20 - 15 = 35; time penalty saturates at 30s
	got := CalculatePerformanceScore(30, 2, 3, true)
	if got != 35 {
		t.Fatalf("30s/2 clues/3 wrong win scored %v, want 35", got)
	}

	// Any longer guess time lands on the same saturated penalty
	if slower := CalculatePerformanceScore(300, 2, 3, true); slower != got {
		t.Fatalf("300s win scored %v, want same as 30s (%v)", slower, got)
	}
}

func TestCalculatePerformanceScoreClampsAtZero(t *testing.T) {
	got := CalculatePerformanceScore(10000, 3, 50, true)
	if got != 0 {
		t.Fatalf("pathological win scored %v, want clamped 0", got)
	}
}

func TestCalculatePerformanceScoreAlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		guessTime := r.Float64() * 500
		clues := r.IntN(4)
		wrong := r.IntN(60)
		won := r.IntN(2) == 0

		score := CalculatePerformanceScore(guessTime, clues, wrong, won)
		if score < 0 || score > 100 {
			t.Fatalf("score %v out of [0,100] for (%v,%d,%d,%v)", score, guessTime, clues, wrong, won)
		}
	}
}
