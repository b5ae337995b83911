// cmd/content-importer - Seeds course content from a JSON export.
//
// Usage: content-importer <course.json>
// The file holds one language with nested units, lessons, exercises and
// options; existing languages with the same code are skipped.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"volo/database"
	"volo/models"

	"github.com/joho/godotenv"
)

type courseFile struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
	Units      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Lessons     []struct {
			Title     string `json:"title"`
			XPReward  int    `json:"xp_reward"`
			Exercises []struct {
				Type          string `json:"type"`
				Prompt        string `json:"prompt"`
				CorrectAnswer string `json:"correct_answer"`
				Options       []struct {
					Text      string `json:"text"`
					IsCorrect bool   `json:"is_correct"`
				} `json:"options"`
			} `json:"exercises"`
		} `json:"lessons"`
	} `json:"units"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: content-importer <course.json>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal("Failed to read course file:", err)
	}

	var course courseFile
	if err := json.Unmarshal(data, &course); err != nil {
		log.Fatal("Failed to parse course file:", err)
	}

	if course.Code == "" || course.Name == "" {
		log.Fatal("Course file must set code and name")
	}

	database.InitDB()
	db := database.GetDB()

	var existing models.Language
	if err := db.Where("code = ?", course.Code).First(&existing).Error; err == nil {
		log.Fatalf("Language %q already exists (id %d), refusing to re-import", course.Code, existing.ID)
	}

	language := models.Language{
		Code:       course.Code,
		Name:       course.Name,
		NativeName: course.NativeName,
		Flag:       course.Flag,
		IsActive:   true,
	}

	for ui, unit := range course.Units {
		u := models.Unit{
			Title:       unit.Title,
			Description: unit.Description,
			Order:       ui + 1,
		}
		for li, lesson := range unit.Lessons {
			l := models.Lesson{
				Title:    lesson.Title,
				Order:    li + 1,
				XPReward: lesson.XPReward,
			}
			if l.XPReward == 0 {
				l.XPReward = 10
			}
			for ei, exercise := range lesson.Exercises {
				e := models.Exercise{
					Type:          exercise.Type,
					Prompt:        exercise.Prompt,
					CorrectAnswer: exercise.CorrectAnswer,
					Order:         ei + 1,
				}
				for oi, opt := range exercise.Options {
					e.Options = append(e.Options, models.ExerciseOption{
						Text:      opt.Text,
						IsCorrect: opt.IsCorrect,
						Order:     oi + 1,
					})
				}
				l.Exercises = append(l.Exercises, e)
			}
			u.Lessons = append(u.Lessons, l)
		}
		language.Units = append(language.Units, u)
	}

	if err := db.Create(&language).Error; err != nil {
		log.Fatal("Failed to import course:", err)
	}

	total := 0
	for _, u := range language.Units {
		for _, l := range u.Lessons {
			total += len(l.Exercises)
		}
	}
	fmt.Printf("Imported %s: %d units, %d exercises\n", language.Name, len(language.Units), total)
}
