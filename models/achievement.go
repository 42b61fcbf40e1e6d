// models/achievement.go
package models

import "time"

// Achievement is a derived milestone view, recomputed from the collection on
// every read. UnlockedAt is set the instant progress first reaches MaxProgress.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"max_progress"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}
