package services

import (
	"math/rand/v2"

	"herodle/models"
)

// rarityThreshold is one row of a cumulative distribution over rarity tiers.
// Rows are ordered mythic first; a roll in [0,100) lands on the first row
// whose cumulative threshold it falls under. The order is part of the
// contract: ties between tiers resolve toward the rarer one.
type rarityThreshold struct {
	Tier       models.Rarity
	Cumulative float64
}

// Score-bucketed rarity tables. Each table's last row sits at 100 or the roll
// falls through to common.
var (
	rarityTableTop = []rarityThreshold{
		{models.RarityMythic, 20},
		{models.RarityLegendary, 60},
		{models.RarityEpic, 100},
	}
	rarityTableHigh = []rarityThreshold{
		{models.RarityMythic, 5},
		{models.RarityLegendary, 30},
		{models.RarityEpic, 70},
		{models.RarityRare, 100},
	}
	rarityTableMid = []rarityThreshold{
		{models.RarityEpic, 40},
		{models.RarityRare, 80},
	}
	rarityTableLow = []rarityThreshold{
		{models.RarityEpic, 10},
		{models.RarityRare, 50},
	}
	rarityTableFloor = []rarityThreshold{
		{models.RarityRare, 20},
	}
)

// rarityTableFor picks the weight table for a performance score.
func rarityTableFor(score float64) []rarityThreshold {
	switch {
	case score >= 95:
		return rarityTableTop
	case score >= 80:
		return rarityTableHigh
	case score >= 60:
		return rarityTableMid
	case score >= 40:
		return rarityTableLow
	default:
		return rarityTableFloor
	}
}

// sampleRarity walks the ordered thresholds for one roll in [0,100).
func sampleRarity(table []rarityThreshold, roll float64) models.Rarity {
	for _, row := range table {
		if roll < row.Cumulative {
			return row.Tier
		}
	}
	return models.RarityCommon
}

// RollRarity draws a rarity tier for the given performance score, consuming
// one random draw. Scores are expected pre-clamped to [0,100] by the scorer.
func RollRarity(score float64, r *rand.Rand) models.Rarity {
	return sampleRarity(rarityTableFor(score), r.Float64()*100)
}

// variantThreshold mirrors rarityThreshold for cosmetic variants, ordered
// animated → holographic → shiny, falling through to standard.
type variantThreshold struct {
	Variant    models.Variant
	Cumulative float64
}

var variantTables = map[models.Rarity][]variantThreshold{
	models.RarityMythic: {
		{models.VariantAnimated, 50},
		{models.VariantHolographic, 80},
		{models.VariantShiny, 100},
	},
	models.RarityLegendary: {
		{models.VariantAnimated, 20},
		{models.VariantHolographic, 50},
		{models.VariantShiny, 80},
	},
	models.RarityEpic: {
		{models.VariantHolographic, 10},
		{models.VariantShiny, 40},
	},
	models.RarityRare: {
		{models.VariantShiny, 20},
	},
	models.RarityCommon: nil,
}

func sampleVariant(table []variantThreshold, roll float64) models.Variant {
	for _, row := range table {
		if roll < row.Cumulative {
			return row.Variant
		}
	}
	return models.VariantStandard
}

// RollVariant draws a cosmetic variant for the given rarity, consuming one
// random draw. Commons always come out standard but still burn the draw.
func RollVariant(rarity models.Rarity, r *rand.Rand) models.Variant {
	return sampleVariant(variantTables[rarity], r.Float64()*100)
}
