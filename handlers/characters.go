// handlers/characters.go - Character catalog endpoints
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"herodle/services"
)

// GetCharacters returns the full character catalog.
func GetCharacters(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"characters": services.AllCharacters(),
		"total":      services.CharacterCount(),
	})
}

// GetCharacter returns a single catalog entry by id.
func GetCharacter(c *fiber.Ctx) error {
	char, ok := services.GetCharacterByID(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Character not found",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"character": char,
	})
}

// GetDailyCharacter returns today's character. Every client computes against
// the same UTC day index, so the pick needs no stored state.
func GetDailyCharacter(c *fiber.Ctx) error {
	char, ok := services.DailyCharacter(time.Now())
	if !ok {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Character catalog unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"character": char,
		"date":      time.Now().UTC().Format("2006-01-02"),
	})
}
