package services

import "herodle/models"

// SummarizeCollection aggregates a collection snapshot. All five rarity tiers
// are always present in the count map, and per-rarity counts sum to the total.
func SummarizeCollection(cards []models.CardInstance, totalKnownCharacters int) models.CollectionSummary {
	rarityCount := make(map[models.Rarity]int, len(models.Rarities))
	for _, r := range models.Rarities {
		rarityCount[r] = 0
	}

	seen := make(map[string]bool)
	for i := range cards {
		rarityCount[cards[i].Rarity]++
		seen[cards[i].CharacterID] = true
	}

	completion := 0.0
	if totalKnownCharacters > 0 {
		completion = float64(len(seen)) / float64(totalKnownCharacters) * 100
	}

	return models.CollectionSummary{
		TotalCards:           len(cards),
		UniqueCharacters:     len(seen),
		RarityCount:          rarityCount,
		CompletionPercentage: completion,
	}
}
