// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `json:"-"` // bcrypt hash, empty for guest accounts
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`

	// Gamification counters
	TotalXP       int `gorm:"default:0" json:"total_xp"`
	CurrentStreak int `gorm:"default:0" json:"current_streak"`
	LongestStreak int `gorm:"default:0" json:"longest_streak"`
	Hearts        int `gorm:"default:5" json:"hearts"`

	// Selected course language
	LanguageID *uint     `gorm:"index" json:"language_id,omitempty"`
	Language   *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`

	// Timestamps
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLogin    time.Time `json:"last_login"`
	LastActivity time.Time `json:"last_activity"`

	// Relationships
	Settings   *UserSettings    `gorm:"foreignKey:UserID" json:"settings,omitempty"`
	Activities []SocialActivity `gorm:"foreignKey:UserID" json:"activities,omitempty"`
}

// AdminUser is a marker row: its existence grants the admin capability.
// Role is recorded but not differentiated per action.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Role      string    `gorm:"default:'admin';size:20" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSettings is a per-user singleton of preference flags.
// AssessmentCompleted gates onboarding.
type UserSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User                *User     `gorm:"foreignKey:UserID" json:"-"`
	AssessmentCompleted bool      `gorm:"default:false" json:"assessment_completed"`
	Theme               string    `gorm:"default:'system';size:20" json:"theme"`
	SoundEnabled        bool      `gorm:"default:true" json:"sound_enabled"`
	NotificationsOn     bool      `gorm:"default:true" json:"notifications_on"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (UserSettings) TableName() string {
	return "user_settings"
}
