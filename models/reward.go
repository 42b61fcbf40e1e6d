// models/reward.go
package models

// PlayTelemetry carries the raw play data of one finished game. All fields are
// required on the wire; handlers validate presence before building this.
type PlayTelemetry struct {
	GuessTimeSeconds float64 `json:"guess_time"`
	CluesUsed        int     `json:"clues_used"`
	WrongAttempts    int     `json:"wrong_attempts"`
	IsWon            bool    `json:"is_won"`
}

// RewardResult is the ephemeral record of one award event. It is composed per
// request and never persisted.
type RewardResult struct {
	Card                 CardInstance  `json:"card"`
	IsFirstTime          bool          `json:"is_first_time"`
	Telemetry            PlayTelemetry `json:"telemetry"`
	PerformanceScore     float64       `json:"performance_score"`
	BonusMultiplier      float64       `json:"bonus_multiplier"`
	UnlockedAchievements []Achievement `json:"unlocked_achievements"`
}
