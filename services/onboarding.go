// services/onboarding.go
package services

import (
	"volo/models"

	"gorm.io/gorm"
)

const (
	OnboardingPath = "/onboarding"
	DashboardPath  = "/dashboard"
)

// HasCompletedOnboarding reports whether the user finished the initial
// assessment. A missing settings row, a false flag, or any lookup failure
// all count as not completed: the safe direction is re-showing onboarding,
// never skipping it.
func HasCompletedOnboarding(db *gorm.DB, userID uint) bool {
	if db == nil {
		return false
	}

	var settings models.UserSettings
	if err := db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return false
	}

	return settings.AssessmentCompleted
}

// OnboardingRedirect maps the completion state onto its destination.
func OnboardingRedirect(completed bool) string {
	if completed {
		return DashboardPath
	}
	return OnboardingPath
}
