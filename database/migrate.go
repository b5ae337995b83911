// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"volo/models"
)

// AllModels lists every persisted model in migration order. Tests migrate
// the same set against their own connection.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.AdminUser{},
		&models.UserSettings{},
		&models.Language{},
		&models.Unit{},
		&models.Lesson{},
		&models.Exercise{},
		&models.ExerciseOption{},
		&models.Story{},
		&models.StoryQuestion{},
		&models.StoryOption{},
		&models.Friend{},
		&models.SocialActivity{},
		&models.DailyChallenge{},
		&models.FlashcardProgress{},
	}
}

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(AllModels()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("All migrations completed successfully")
}

// createIndexes creates indexes the auto-migrator does not cover
func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_total_xp ON users(total_xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Content ordering indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_units_language_position ON units(language_id, position)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_lessons_unit_position ON lessons(unit_id, position)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_exercises_lesson_position ON exercises(lesson_id, position)")

	// Social indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_friends_user_status ON friends(user_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_friends_friend_status ON friends(friend_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activities_user_created ON social_activities(user_id, created_at DESC)")

	// Challenge claim lookup
	db.Exec("CREATE INDEX IF NOT EXISTS idx_daily_challenges_claimed ON daily_challenges(user_id, date, claimed)")

	log.Println("Indexes created successfully")
}
