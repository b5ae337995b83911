// handlers/languages.go
package handlers

import (
	"volo/database"
	"volo/middleware"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetLanguages returns all active languages. The catalog changes only
// through the admin surface, so responses are cacheable for 30 minutes.
func GetLanguages(c *fiber.Ctx) error {
	db := database.GetDB()

	var languages []models.Language
	if err := db.Where("is_active = ?", true).Order("name ASC").Find(&languages).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch languages"})
	}

	c.Set("Cache-Control", "public, max-age=1800")
	return c.JSON(fiber.Map{"languages": languages})
}

// GetLanguage returns one language by code with its ordered course tree.
func GetLanguage(c *fiber.Ctx) error {
	code := c.Params("code")
	db := database.GetDB()

	var language models.Language
	err := db.Where("code = ? AND is_active = ?", code, true).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.position ASC")
		}).
		Preload("Units.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.position ASC")
		}).
		First(&language).Error
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Language not found"})
	}

	return c.JSON(fiber.Map{"language": language})
}

type SetLanguageRequest struct {
	LanguageID uint `json:"language_id"`
}

// SetUserLanguage records the caller's selected course language.
func SetUserLanguage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SetLanguageRequest
	if err := c.BodyParser(&req); err != nil || req.LanguageID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "language_id is required"})
	}

	db := database.GetDB()

	var language models.Language
	if err := db.Where("id = ? AND is_active = ?", req.LanguageID, true).First(&language).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Language not found or inactive"})
	}

	if err := db.Model(&models.User{}).Where("id = ?", userID).
		Update("language_id", language.ID).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update language"})
	}

	return c.JSON(fiber.Map{"success": true, "language": language})
}
