// handlers/rewards.go - Reward issuance endpoint
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"herodle/middleware"
	"herodle/services"
)

// AwardCardRequest is the wire shape of one award event. Every field is
// required; pointer types distinguish "absent" from zero values so a missing
// isWon (legitimately false) is still caught.
type AwardCardRequest struct {
	CharacterID   *string  `json:"characterId"`
	GuessTime     *float64 `json:"guessTime"`
	CluesUsed     *int     `json:"cluesUsed"`
	WrongAttempts *int     `json:"wrongAttempts"`
	IsWon         *bool    `json:"isWon"`
}

// AwardCard issues the card reward for a finished game.
func AwardCard(c *fiber.Ctx) error {
	var req AwardCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.CharacterID == nil || req.GuessTime == nil || req.CluesUsed == nil ||
		req.WrongAttempts == nil || req.IsWon == nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "characterId, guessTime, cluesUsed, wrongAttempts and isWon are required",
		})
	}

	svc := services.GetRewardService()
	reward, err := svc.AwardCard(c.Context(), middleware.CollectionKey(c), services.AwardRequest{
		CharacterID:      *req.CharacterID,
		GuessTimeSeconds: *req.GuessTime,
		CluesUsed:        *req.CluesUsed,
		WrongAttempts:    *req.WrongAttempts,
		IsWon:            *req.IsWon,
	})
	if err != nil {
		var validation *services.ValidationError
		switch {
		case errors.As(err, &validation):
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   validation.Message,
			})
		case errors.Is(err, services.ErrCharacterNotFound):
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Character not found",
			})
		default:
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to award card",
			})
		}
	}

	BroadcastReward(reward)

	return c.JSON(fiber.Map{
		"success": true,
		"reward":  reward,
	})
}
