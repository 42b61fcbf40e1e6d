package services

import (
	"testing"
	"time"

	"herodle/models"
)

func mintedAt(n int) time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Minute)
}

func testCards(n int, rarity models.Rarity) []models.CardInstance {
	cards := make([]models.CardInstance, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, models.CardInstance{
			ID:          "thor-1",
			CharacterID: "thor",
			Rarity:      rarity,
			Variant:     models.VariantStandard,
			CreatedAt:   mintedAt(i),
		})
	}
	return cards
}

func achievementByID(t *testing.T, achievements []models.Achievement, id string) models.Achievement {
	t.Helper()
	for _, a := range achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %q missing from %d returned", id, len(achievements))
	return models.Achievement{}
}

func TestEvaluateAchievementsEmptyCollection(t *testing.T) {
	achievements := EvaluateAchievements(nil, nil)
	if len(achievements) != 6 {
		t.Fatalf("got %d achievements, want 6", len(achievements))
	}
	for _, a := range achievements {
		if a.Unlocked || a.UnlockedAt != nil {
			t.Fatalf("%s unlocked on an empty collection", a.ID)
		}
		if a.Progress != 0 {
			t.Fatalf("%s progress %d on an empty collection", a.ID, a.Progress)
		}
	}
}

func TestEvaluateAchievementsStableOrder(t *testing.T) {
	want := []string{
		AchievementFirstCard,
		AchievementCollector,
		AchievementMasterCollector,
		AchievementLegendaryPull,
		AchievementMythicHunter,
		AchievementPerfectGame,
	}
	achievements := EvaluateAchievements(testCards(3, models.RarityCommon), nil)
	for i, a := range achievements {
		if a.ID != want[i] {
			t.Fatalf("position %d is %s, want %s", i, a.ID, want[i])
		}
	}
}

func TestCountAchievementUnlockTimes(t *testing.T) {
	cards := testCards(12, models.RarityCommon)
	achievements := EvaluateAchievements(cards, nil)

	first := achievementByID(t, achievements, AchievementFirstCard)
	if !first.Unlocked || first.UnlockedAt == nil || !first.UnlockedAt.Equal(cards[0].CreatedAt) {
		t.Fatalf("first-card unlock time %v, want first card's mint time %v", first.UnlockedAt, cards[0].CreatedAt)
	}

	collector := achievementByID(t, achievements, AchievementCollector)
	if !collector.Unlocked || !collector.UnlockedAt.Equal(cards[9].CreatedAt) {
		t.Fatalf("collector unlock time %v, want 10th card's mint time %v", collector.UnlockedAt, cards[9].CreatedAt)
	}
	if collector.Progress != 10 || collector.MaxProgress != 10 {
		t.Fatalf("collector progress %d/%d, want 10/10", collector.Progress, collector.MaxProgress)
	}

	master := achievementByID(t, achievements, AchievementMasterCollector)
	if master.Unlocked {
		t.Fatal("master-collector unlocked at 12 cards")
	}
	if master.Progress != 12 || master.MaxProgress != 50 {
		t.Fatalf("master-collector progress %d/%d, want 12/50", master.Progress, master.MaxProgress)
	}
}

func TestRarityAchievementsUseFirstMatchingCard(t *testing.T) {
	cards := testCards(3, models.RarityCommon)
	cards[1].Rarity = models.RarityLegendary
	cards[2].Rarity = models.RarityLegendary

	achievements := EvaluateAchievements(cards, nil)

	legendary := achievementByID(t, achievements, AchievementLegendaryPull)
	if !legendary.Unlocked || !legendary.UnlockedAt.Equal(cards[1].CreatedAt) {
		t.Fatalf("legendary-pull unlock time %v, want first legendary's %v", legendary.UnlockedAt, cards[1].CreatedAt)
	}

	mythic := achievementByID(t, achievements, AchievementMythicHunter)
	if mythic.Unlocked || mythic.Progress != 0 {
		t.Fatal("mythic-hunter unlocked without a mythic card")
	}
}

func TestPerfectGameAchievementComesFromRecordedInstant(t *testing.T) {
	at := mintedAt(5)
	achievements := EvaluateAchievements(testCards(1, models.RarityCommon), &at)

	perfect := achievementByID(t, achievements, AchievementPerfectGame)
	if !perfect.Unlocked || !perfect.UnlockedAt.Equal(at) {
		t.Fatalf("perfect-game unlock time %v, want %v", perfect.UnlockedAt, at)
	}
	if perfect.Progress != 1 {
		t.Fatalf("perfect-game progress %d, want 1", perfect.Progress)
	}
}

func TestNewlyUnlockedDiff(t *testing.T) {
	before := EvaluateAchievements(testCards(9, models.RarityCommon), nil)
	after := EvaluateAchievements(testCards(10, models.RarityCommon), nil)

	fired := NewlyUnlocked(before, after)
	if len(fired) != 1 || fired[0].ID != AchievementCollector {
		t.Fatalf("fired %v, want only collector", fired)
	}
}

func TestNewlyUnlockedNothingNewIsEmptyNotNil(t *testing.T) {
	view := EvaluateAchievements(testCards(2, models.RarityCommon), nil)
	fired := NewlyUnlocked(view, view)
	if fired == nil {
		t.Fatal("diff returned nil, want empty slice")
	}
	if len(fired) != 0 {
		t.Fatalf("diff fired %v on identical views", fired)
	}
}
