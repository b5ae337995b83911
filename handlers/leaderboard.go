// handlers/leaderboard.go
package handlers

import (
	"volo/database"
	"volo/models"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the global XP leaderboard. Guests are excluded;
// streak breaks ties.
func GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := database.GetDB()

	var users []models.User
	if err := db.Where("is_guest = ?", false).
		Order("total_xp DESC, longest_streak DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	// Strip private fields
	for i := range users {
		users[i].Password = ""
		users[i].Email = nil
	}

	var total int64
	db.Model(&models.User{}).Where("is_guest = ?", false).Count(&total)

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}
