// handlers/lessons.go
package handlers

import (
	"volo/database"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetLesson returns a lesson with its exercises and options in course
// order, plus the attached story if one exists.
func GetLesson(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var lesson models.Lesson
	err := db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercises.position ASC")
		}).
		Preload("Exercises.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercise_options.position ASC")
		}).
		Preload("Story.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("story_questions.position ASC")
		}).
		Preload("Story.Questions.Options").
		First(&lesson, id).Error
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Lesson not found"})
	}

	return c.JSON(fiber.Map{"success": true, "lesson": lesson})
}
