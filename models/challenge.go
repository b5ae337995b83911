// models/challenge.go - Daily challenge assignments
package models

import (
	"time"
)

// Challenge type constants
const (
	ChallengeTypeLessons  = "complete_lessons"
	ChallengeTypeXP       = "earn_xp"
	ChallengeTypePractice = "practice_flashcards"
)

// DailyChallenge is a per-user-per-day assignment. Date is the day it
// belongs to (midnight UTC). Claiming is a single conditional update keyed
// by id + owner + unclaimed state.
type DailyChallenge struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_daily_challenges_user_date_type"`
	User        *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date        time.Time  `json:"date" gorm:"not null;uniqueIndex:idx_daily_challenges_user_date_type"`
	Type        string     `json:"type" gorm:"not null;size:30;uniqueIndex:idx_daily_challenges_user_date_type"`
	Description string     `json:"description" gorm:"size:200"`
	Target      int        `json:"target" gorm:"default:1"`
	Progress    int        `json:"progress" gorm:"default:0"`
	RewardXP    int        `json:"reward_xp" gorm:"not null;default:10"`
	Claimed     bool       `json:"claimed" gorm:"default:false"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}
