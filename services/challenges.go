// services/challenges.go - Daily challenge assignment
package services

import (
	"time"
	"volo/models"

	"gorm.io/gorm"
)

// challengeTemplate describes one of the rotating daily assignments.
type challengeTemplate struct {
	Type        string
	Description string
	Target      int
	RewardXP    int
}

var challengeTemplates = []challengeTemplate{
	{models.ChallengeTypeLessons, "Complete 3 lessons", 3, 30},
	{models.ChallengeTypeXP, "Earn 50 XP", 50, 20},
	{models.ChallengeTypePractice, "Review 10 flashcards", 10, 15},
}

// ChallengeDay truncates a timestamp to its UTC day, the key under which
// daily challenges are stored.
func ChallengeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EnsureDailyChallenges instantiates the day's challenge set for a user if
// it does not exist yet, and returns the full set. The unique index on
// user+date+type makes a concurrent first read safe: the losing insert
// fails and the set is read back.
func EnsureDailyChallenges(db *gorm.DB, userID uint, date time.Time) ([]models.DailyChallenge, error) {
	day := ChallengeDay(date)

	var challenges []models.DailyChallenge
	if err := db.Where("user_id = ? AND date = ?", userID, day).
		Order("id ASC").Find(&challenges).Error; err != nil {
		return nil, err
	}

	if len(challenges) > 0 {
		return challenges, nil
	}

	for _, tpl := range challengeTemplates {
		challenges = append(challenges, models.DailyChallenge{
			UserID:      userID,
			Date:        day,
			Type:        tpl.Type,
			Description: tpl.Description,
			Target:      tpl.Target,
			RewardXP:    tpl.RewardXP,
		})
	}

	if err := db.Create(&challenges).Error; err != nil {
		// Another request created the set between the read and the insert
		challenges = nil
		if rerr := db.Where("user_id = ? AND date = ?", userID, day).
			Order("id ASC").Find(&challenges).Error; rerr != nil || len(challenges) == 0 {
			return nil, err
		}
	}

	return challenges, nil
}
