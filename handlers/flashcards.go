// handlers/flashcards.go - Spaced-repetition due cards
package handlers

import (
	"time"
	"volo/database"
	"volo/middleware"
	"volo/models"

	"github.com/gofiber/fiber/v2"
)

const dueCardLimit = 30

// GetDueFlashcards returns up to 30 cards whose next review has passed,
// soonest first. Identity comes from the session; a userId query parameter
// is accepted as a fallback for the reminder job.
func GetDueFlashcards(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		if qid := c.QueryInt("userId", 0); qid > 0 {
			userID = uint(qid)
		} else {
			return c.Status(401).JSON(fiber.Map{"error": "User not authenticated"})
		}
	}

	db := database.GetDB()

	var cards []models.FlashcardProgress
	if err := db.Where("user_id = ? AND next_review <= ?", userID, time.Now()).
		Order("next_review ASC").Limit(dueCardLimit).
		Find(&cards).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch due cards"})
	}

	return c.JSON(fiber.Map{"success": true, "cards": cards})
}
