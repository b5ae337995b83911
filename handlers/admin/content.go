// handlers/admin/content.go - Course content management
package admin

import (
	"volo/database"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetContentTree returns the full catalog with every level ordered, the
// working view of the admin content editor.
func GetContentTree(c *fiber.Ctx) error {
	db := database.GetDB()

	var languages []models.Language
	err := db.Order("name ASC").
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.position ASC")
		}).
		Preload("Units.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.position ASC")
		}).
		Preload("Units.Lessons.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercises.position ASC")
		}).
		Preload("Units.Lessons.Exercises.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercise_options.position ASC")
		}).
		Find(&languages).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch content"})
	}

	return c.JSON(fiber.Map{"success": true, "languages": languages})
}

type UnitRequest struct {
	LanguageID  uint   `json:"language_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// CreateUnit adds a unit to a language.
func CreateUnit(c *fiber.Ctx) error {
	var req UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.LanguageID == 0 || req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "language_id and title are required"})
	}

	db := database.GetDB()

	var language models.Language
	if err := db.First(&language, req.LanguageID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Language not found"})
	}

	unit := models.Unit{
		LanguageID:  req.LanguageID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := db.Create(&unit).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create unit"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "unit": unit})
}

// UpdateUnit edits unit fields.
func UpdateUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var unit models.Unit
	if err := db.First(&unit, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
	}

	var req UnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title != "" {
		unit.Title = req.Title
	}
	if req.Description != "" {
		unit.Description = req.Description
	}
	if req.Order != 0 {
		unit.Order = req.Order
	}

	if err := db.Save(&unit).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update unit"})
	}

	return c.JSON(fiber.Map{"success": true, "unit": unit})
}

// DeleteUnit removes a unit and its lessons.
func DeleteUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var unit models.Unit
	if err := db.First(&unit, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
	}

	if err := db.Delete(&unit).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete unit"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Unit deleted"})
}

type LessonRequest struct {
	UnitID   uint   `json:"unit_id"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
	XPReward int    `json:"xp_reward"`
}

// CreateLesson adds a lesson to a unit.
func CreateLesson(c *fiber.Ctx) error {
	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UnitID == 0 || req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "unit_id and title are required"})
	}

	db := database.GetDB()

	var unit models.Unit
	if err := db.First(&unit, req.UnitID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
	}

	lesson := models.Lesson{
		UnitID:   req.UnitID,
		Title:    req.Title,
		Order:    req.Order,
		XPReward: req.XPReward,
	}
	if lesson.XPReward == 0 {
		lesson.XPReward = 10
	}
	if err := db.Create(&lesson).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lesson"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "lesson": lesson})
}

// UpdateLesson edits lesson fields.
func UpdateLesson(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Order != 0 {
		lesson.Order = req.Order
	}
	if req.XPReward != 0 {
		lesson.XPReward = req.XPReward
	}

	if err := db.Save(&lesson).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lesson"})
	}

	return c.JSON(fiber.Map{"success": true, "lesson": lesson})
}

// DeleteLesson removes a lesson, its exercises and its story.
func DeleteLesson(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Lesson not found"})
	}

	if err := db.Delete(&lesson).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Lesson deleted"})
}

type ExerciseRequest struct {
	LessonID      uint   `json:"lesson_id"`
	Type          string `json:"type"`
	Prompt        string `json:"prompt"`
	CorrectAnswer string `json:"correct_answer"`
	Order         int    `json:"order"`
	Options       []struct {
		Text      string `json:"text"`
		IsCorrect bool   `json:"is_correct"`
		Order     int    `json:"order"`
	} `json:"options"`
}

// CreateExercise adds an exercise with its answer options in one request.
func CreateExercise(c *fiber.Ctx) error {
	var req ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.LessonID == 0 || req.Type == "" || req.Prompt == "" {
		return c.Status(400).JSON(fiber.Map{"error": "lesson_id, type and prompt are required"})
	}

	db := database.GetDB()

	var lesson models.Lesson
	if err := db.First(&lesson, req.LessonID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Lesson not found"})
	}

	exercise := models.Exercise{
		LessonID:      req.LessonID,
		Type:          req.Type,
		Prompt:        req.Prompt,
		CorrectAnswer: req.CorrectAnswer,
		Order:         req.Order,
	}
	for _, opt := range req.Options {
		exercise.Options = append(exercise.Options, models.ExerciseOption{
			Text:      opt.Text,
			IsCorrect: opt.IsCorrect,
			Order:     opt.Order,
		})
	}

	if err := db.Create(&exercise).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exercise"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "exercise": exercise})
}

// UpdateExercise edits exercise fields. Options are replaced wholesale
// when the request carries any.
func UpdateExercise(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var exercise models.Exercise
	if err := db.First(&exercise, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Exercise not found"})
	}

	var req ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Type != "" {
		exercise.Type = req.Type
	}
	if req.Prompt != "" {
		exercise.Prompt = req.Prompt
	}
	if req.CorrectAnswer != "" {
		exercise.CorrectAnswer = req.CorrectAnswer
	}
	if req.Order != 0 {
		exercise.Order = req.Order
	}

	if err := db.Save(&exercise).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exercise"})
	}

	if len(req.Options) > 0 {
		if err := db.Where("exercise_id = ?", exercise.ID).Delete(&models.ExerciseOption{}).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to replace exercise options"})
		}
		for _, opt := range req.Options {
			option := models.ExerciseOption{
				ExerciseID: exercise.ID,
				Text:       opt.Text,
				IsCorrect:  opt.IsCorrect,
				Order:      opt.Order,
			}
			if err := db.Create(&option).Error; err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to replace exercise options"})
			}
		}
	}

	return c.JSON(fiber.Map{"success": true, "exercise": exercise})
}

// DeleteExercise removes an exercise and its options.
func DeleteExercise(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var exercise models.Exercise
	if err := db.First(&exercise, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Exercise not found"})
	}

	if err := db.Where("exercise_id = ?", exercise.ID).Delete(&models.ExerciseOption{}).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exercise options"})
	}
	if err := db.Delete(&exercise).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exercise"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Exercise deleted"})
}
