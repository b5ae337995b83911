// handlers/settings.go - User preference flags
package handlers

import (
	"volo/database"
	"volo/middleware"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingsRequest struct {
	AssessmentCompleted *bool   `json:"assessment_completed"`
	Theme               *string `json:"theme"`
	SoundEnabled        *bool   `json:"sound_enabled"`
	NotificationsOn     *bool   `json:"notifications_on"`
}

// GetSettings returns the caller's settings, creating the default row on
// first access.
func GetSettings(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	settings, err := loadOrCreateSettings(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

// SaveSettings applies partial updates to the caller's settings row.
func SaveSettings(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Theme != nil {
		switch *req.Theme {
		case "light", "dark", "system":
		default:
			return c.Status(400).JSON(fiber.Map{"error": "Theme must be light, dark or system"})
		}
	}

	db := database.GetDB()
	settings, err := loadOrCreateSettings(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	updates := map[string]interface{}{}
	if req.AssessmentCompleted != nil {
		updates["assessment_completed"] = *req.AssessmentCompleted
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}
	if req.SoundEnabled != nil {
		updates["sound_enabled"] = *req.SoundEnabled
	}
	if req.NotificationsOn != nil {
		updates["notifications_on"] = *req.NotificationsOn
	}

	if len(updates) > 0 {
		if err := db.Model(&settings).Updates(updates).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func loadOrCreateSettings(db *gorm.DB, userID uint) (models.UserSettings, error) {
	var settings models.UserSettings
	err := db.Where("user_id = ?", userID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.UserSettings{
			UserID:          userID,
			Theme:           "system",
			SoundEnabled:    true,
			NotificationsOn: true,
		}
		err = db.Create(&settings).Error
	}
	return settings, err
}
