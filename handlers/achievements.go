// handlers/achievements.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"herodle/middleware"
	"herodle/services"
)

// GetAchievements returns the fixed achievement list, recomputed fresh from
// the player's current collection.
func GetAchievements(c *fiber.Ctx) error {
	svc := services.GetRewardService()

	achievements, err := svc.Achievements(middleware.CollectionKey(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load achievements",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
	})
}
