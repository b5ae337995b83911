// handlers/challenges.go - Daily challenges and reward claiming
package handlers

import (
	"time"
	"volo/database"
	"volo/middleware"
	"volo/models"
	"volo/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetDailyChallenges returns the caller's challenges for today, or for the
// given ?date=YYYY-MM-DD. Today's set is generated on first read.
func GetDailyChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		day = parsed
	}

	var challenges []models.DailyChallenge
	if services.ChallengeDay(day).Equal(services.ChallengeDay(time.Now())) {
		challenges, err = services.EnsureDailyChallenges(db, userID, day)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load challenges"})
		}
	} else {
		// Past/future days are read-only
		if err := db.Where("user_id = ? AND date = ?", userID, services.ChallengeDay(day)).
			Order("id ASC").Find(&challenges).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load challenges"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "challenges": challenges})
}

// ClaimChallenge marks a challenge claimed and awards its XP. The
// claimed transition is a single conditional update keyed by
// id + owner + unclaimed state, so two concurrent claims for the same
// challenge can never both be awarded. The caller cannot tell a missing
// challenge from an already-claimed one.
func ClaimChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil || challengeID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge id"})
	}

	db := database.GetDB()

	var challenge models.DailyChallenge
	if err := db.Where("id = ? AND user_id = ?", challengeID, userID).
		First(&challenge).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Challenge not found or already claimed"})
	}

	now := time.Now()
	result := db.Model(&models.DailyChallenge{}).
		Where("id = ? AND user_id = ? AND claimed = ?", challengeID, userID, false).
		Updates(map[string]interface{}{"claimed": true, "claimed_at": now})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to claim challenge"})
	}
	if result.RowsAffected == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Challenge not found or already claimed"})
	}

	if err := db.Model(&models.User{}).Where("id = ?", userID).
		Update("total_xp", gorm.Expr("total_xp + ?", challenge.RewardXP)).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to award XP"})
	}

	var user models.User
	db.First(&user, userID)

	db.Create(&models.SocialActivity{
		UserID:   userID,
		Type:     "challenge_claimed",
		Message:  challenge.Description,
		XPEarned: challenge.RewardXP,
		IsPublic: true,
	})

	return c.JSON(fiber.Map{
		"success":   true,
		"xp_earned": user.TotalXP,
		"reward_xp": challenge.RewardXP,
	})
}
