// models/social.go - Friend edges and the activity feed
package models

import (
	"time"
)

// Friend status constants
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusDeclined = "declined"
)

// Friend is a directional edge: UserID requested, FriendID is the addressee.
// Status transitions only pending -> accepted/declined, only by the addressee,
// exactly once.
type Friend struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	User        *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FriendID    uint       `json:"friend_id" gorm:"not null;index"`
	Friend      *User      `json:"friend,omitempty" gorm:"foreignKey:FriendID"`
	Status      string     `json:"status" gorm:"default:'pending';size:20"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// SocialActivity is an append-only event shown in friends' feeds.
type SocialActivity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type      string    `json:"type" gorm:"not null;size:30"` // lesson_completed, streak_milestone, challenge_claimed, friend_added
	Message   string    `json:"message" gorm:"size:500"`
	XPEarned  int       `json:"xp_earned" gorm:"default:0"`
	IsPublic  bool      `json:"is_public" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Friend) TableName() string {
	return "friends"
}

func (SocialActivity) TableName() string {
	return "social_activities"
}
