// handlers/auth.go - Guest identity
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"herodle/middleware"
)

// GuestLogin hands out a fresh collection key wrapped in a signed token.
// Without one, all requests share the default collection.
func GuestLogin(c *fiber.Ctx) error {
	collectionKey := "guest-" + uuid.New().String()

	token, err := middleware.IssueGuestToken(collectionKey)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create guest session",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"token":          token,
		"collection_key": collectionKey,
	})
}
