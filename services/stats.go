package services

import (
	"context"
	"log"
	"math"
	"math/rand/v2"

	"herodle/models"
)

// popularUniverses get the boosted popularity range at mint time.
var popularUniverses = map[string]bool{
	"Marvel": true,
	"DC":     true,
}

// AssignStats produces the popularity/difficulty/power triple for a new card,
// each in [0,100]. Difficulty comes from the oracle when it answers; any
// oracle failure is logged and masked by a uniform random fallback, so the
// caller always gets a complete stat set and never an error.
func AssignStats(ctx context.Context, char *models.Character, oracle DifficultyOracle, r *rand.Rand) models.CardStats {
	return buildStats(char, predictDifficulty(ctx, char.Name, oracle), r)
}

// predictDifficulty asks the oracle, returning nil when it fails so the
// caller falls back to a random draw. The call is always attempted first.
func predictDifficulty(ctx context.Context, name string, oracle DifficultyOracle) *int {
	if oracle == nil {
		return nil
	}
	score, err := oracle.PredictDifficulty(ctx, name)
	if err != nil {
		log.Printf("⚠️ Difficulty prediction failed for %s, using random fallback: %v", name, err)
		return nil
	}
	d := int(math.Round(score))
	return &d
}

func buildStats(char *models.Character, difficulty *int, r *rand.Rand) models.CardStats {
	var popularity int
	if popularUniverses[char.Universe] {
		popularity = 70 + int(r.Float64()*30) // [70,100)
	} else {
		popularity = 30 + int(r.Float64()*50) // [30,80)
	}

	d := 0
	if difficulty != nil {
		d = *difficulty
	} else {
		d = r.IntN(100) // [0,100)
	}

	var power int
	if len(char.Powers) > 0 {
		power = 60 + int(r.Float64()*30) // [60,90)
	} else {
		power = 20 + int(r.Float64()*60) // [20,80)
	}

	return models.CardStats{
		Popularity: popularity,
		Difficulty: d,
		Power:      power,
	}
}
