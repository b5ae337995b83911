// handlers/admin/languages.go - Language catalog management
package admin

import (
	"volo/database"
	"volo/models"

	"github.com/gofiber/fiber/v2"
)

type LanguageRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
	IsActive   *bool  `json:"is_active"`
}

// CreateLanguage adds a language to the catalog.
func CreateLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Code == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "code and name are required"})
	}

	db := database.GetDB()

	var existing models.Language
	if err := db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Language code already exists"})
	}

	language := models.Language{
		Code:       req.Code,
		Name:       req.Name,
		NativeName: req.NativeName,
		Flag:       req.Flag,
		IsActive:   true,
	}
	if req.IsActive != nil {
		language.IsActive = *req.IsActive
	}

	if err := db.Create(&language).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create language"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "language": language})
}

// UpdateLanguage edits catalog fields.
func UpdateLanguage(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var language models.Language
	if err := db.First(&language, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Language not found"})
	}

	var req LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name != "" {
		language.Name = req.Name
	}
	if req.NativeName != "" {
		language.NativeName = req.NativeName
	}
	if req.Flag != "" {
		language.Flag = req.Flag
	}
	if req.IsActive != nil {
		language.IsActive = *req.IsActive
	}

	if err := db.Save(&language).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update language"})
	}

	return c.JSON(fiber.Map{"success": true, "language": language})
}

// DeleteLanguage removes a language and its course tree.
func DeleteLanguage(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var language models.Language
	if err := db.First(&language, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Language not found"})
	}

	if err := db.Delete(&language).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete language"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Language deleted"})
}
