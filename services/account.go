// services/account.go - Account deletion cascade
package services

import (
	"volo/models"

	"gorm.io/gorm"
)

// DeleteUserCascade removes a user and every record the user owns, in one
// transaction. The cascade is explicit rather than an ORM default so the
// exact contract is visible and testable: friend edges in both directions,
// activities, flashcard progress, challenges, settings, the admin marker,
// then the user row itself.
func DeleteUserCascade(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? OR friend_id = ?", userID, userID).
			Delete(&models.Friend{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.SocialActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.FlashcardProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.DailyChallenge{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.UserSettings{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.AdminUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
