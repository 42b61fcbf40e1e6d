package services

import (
	"time"

	"herodle/models"
)

// Achievement ids, in the fixed display order the read endpoint returns.
const (
	AchievementFirstCard       = "first-card"
	AchievementCollector       = "collector"
	AchievementMasterCollector = "master-collector"
	AchievementLegendaryPull   = "legendary-pull"
	AchievementMythicHunter    = "mythic-hunter"
	AchievementPerfectGame     = "perfect-game"
)

// EvaluateAchievements recomputes every achievement fresh from a collection
// snapshot. Cards must be in unlock (append) order so threshold unlock times
// can be read off the card that crossed the threshold. perfectGameAt is the
// recorded instant of the first perfect game, which cannot be derived from
// the cards alone.
func EvaluateAchievements(cards []models.CardInstance, perfectGameAt *time.Time) []models.Achievement {
	total := len(cards)

	var firstLegendary, firstMythic *time.Time
	legendaryCount, mythicCount := 0, 0
	for i := range cards {
		switch cards[i].Rarity {
		case models.RarityLegendary:
			legendaryCount++
			if firstLegendary == nil {
				t := cards[i].CreatedAt
				firstLegendary = &t
			}
		case models.RarityMythic:
			mythicCount++
			if firstMythic == nil {
				t := cards[i].CreatedAt
				firstMythic = &t
			}
		}
	}

	return []models.Achievement{
		countAchievement(AchievementFirstCard, "First Card", "Win your first card", "🎴", total, 1, cards),
		countAchievement(AchievementCollector, "Collector", "Collect 10 cards", "📚", total, 10, cards),
		countAchievement(AchievementMasterCollector, "Master Collector", "Collect 50 cards", "👑", total, 50, cards),
		rarityAchievement(AchievementLegendaryPull, "Legendary Pull", "Win a legendary card", "⭐", legendaryCount, firstLegendary),
		rarityAchievement(AchievementMythicHunter, "Mythic Hunter", "Win a mythic card", "🔥", mythicCount, firstMythic),
		perfectGameAchievement(perfectGameAt),
	}
}

// countAchievement unlocks when the collection reaches target cards; the
// unlock time is the mint time of the card that crossed the threshold.
func countAchievement(id, name, description, icon string, total, target int, cards []models.CardInstance) models.Achievement {
	progress := total
	if progress > target {
		progress = target
	}
	a := models.Achievement{
		ID:          id,
		Name:        name,
		Description: description,
		Icon:        icon,
		Progress:    progress,
		MaxProgress: target,
	}
	if total >= target {
		a.Unlocked = true
		t := cards[target-1].CreatedAt
		a.UnlockedAt = &t
	}
	return a
}

func rarityAchievement(id, name, description, icon string, count int, firstAt *time.Time) models.Achievement {
	progress := count
	if progress > 1 {
		progress = 1
	}
	a := models.Achievement{
		ID:          id,
		Name:        name,
		Description: description,
		Icon:        icon,
		Progress:    progress,
		MaxProgress: 1,
	}
	if count >= 1 {
		a.Unlocked = true
		a.UnlockedAt = firstAt
	}
	return a
}

func perfectGameAchievement(unlockedAt *time.Time) models.Achievement {
	a := models.Achievement{
		ID:          AchievementPerfectGame,
		Name:        "Perfect Game",
		Description: "Score a flawless 100-point win",
		Icon:        "💯",
		Progress:    0,
		MaxProgress: 1,
	}
	if unlockedAt != nil {
		a.Progress = 1
		a.Unlocked = true
		a.UnlockedAt = unlockedAt
	}
	return a
}

// NewlyUnlocked diffs two achievement evaluations and returns the ones that
// transitioned to unlocked, in display order. This is the edge-triggered view
// a single award event reports, as opposed to the level-triggered view the
// read endpoint recomputes.
func NewlyUnlocked(before, after []models.Achievement) []models.Achievement {
	prior := make(map[string]bool, len(before))
	for _, a := range before {
		if a.Unlocked {
			prior[a.ID] = true
		}
	}

	fired := []models.Achievement{}
	for _, a := range after {
		if a.Unlocked && !prior[a.ID] {
			fired = append(fired, a)
		}
	}
	return fired
}
