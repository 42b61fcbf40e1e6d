// handlers/collection.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"herodle/middleware"
	"herodle/services"
)

// GetCollection returns the player's cards newest-first plus aggregate stats.
func GetCollection(c *fiber.Ctx) error {
	svc := services.GetRewardService()

	cards, summary, err := svc.Collection(middleware.CollectionKey(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load collection",
		})
	}

	// Snapshot order is unlock order; the client shows newest first.
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"cards":                cards,
		"totalCards":           summary.TotalCards,
		"uniqueCharacters":     summary.UniqueCharacters,
		"rarityCount":          summary.RarityCount,
		"completionPercentage": summary.CompletionPercentage,
	})
}
