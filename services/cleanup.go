// services/cleanup.go - Background janitor jobs
package services

import (
	"log"
	"time"
	"volo/database"
	"volo/models"

	"github.com/go-co-op/gocron"
)

// CleanupService runs periodic housekeeping: stale guest accounts and
// expired unclaimed daily challenges.
type CleanupService struct {
	scheduler *gocron.Scheduler
}

var cleanupService *CleanupService

// InitCleanupService initializes and starts the singleton cleanup service.
func InitCleanupService() {
	cleanupService = &CleanupService{
		scheduler: gocron.NewScheduler(time.UTC),
	}
	cleanupService.Start()
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

// Start schedules the janitor jobs.
func (s *CleanupService) Start() {
	if _, err := s.scheduler.Every(1).Day().At("03:00").Do(func() {
		if err := s.CleanupStaleGuests(); err != nil {
			log.Printf("Guest cleanup failed: %v", err)
		}
	}); err != nil {
		log.Printf("Failed to schedule guest cleanup: %v", err)
	}

	if _, err := s.scheduler.Every(1).Day().At("00:10").Do(func() {
		if err := s.CleanupExpiredChallenges(); err != nil {
			log.Printf("Challenge cleanup failed: %v", err)
		}
	}); err != nil {
		log.Printf("Failed to schedule challenge cleanup: %v", err)
	}

	s.scheduler.StartAsync()
}

// Stop stops the scheduler.
func (s *CleanupService) Stop() {
	s.scheduler.Stop()
}

// CleanupStaleGuests deletes guest accounts inactive for 30 days. Their
// owned rows go with them through the same cascade used by account
// deletion.
func (s *CleanupService) CleanupStaleGuests() error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -30)

	var guests []models.User
	if err := db.Where("is_guest = ? AND last_activity < ?", true, cutoff).
		Find(&guests).Error; err != nil {
		return err
	}

	if len(guests) == 0 {
		return nil
	}

	for _, guest := range guests {
		if err := DeleteUserCascade(db, guest.ID); err != nil {
			log.Printf("Failed to delete stale guest %d: %v", guest.ID, err)
		}
	}

	log.Printf("Cleaned up %d stale guest accounts", len(guests))
	return nil
}

// CleanupExpiredChallenges removes unclaimed challenges older than 7 days.
// Claimed rows are kept as reward history.
func (s *CleanupService) CleanupExpiredChallenges() error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	cutoff := ChallengeDay(time.Now().AddDate(0, 0, -7))

	result := db.Where("claimed = ? AND date < ?", false, cutoff).
		Delete(&models.DailyChallenge{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Cleaned up %d expired unclaimed challenges", result.RowsAffected)
	}
	return nil
}
