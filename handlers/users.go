// handlers/users.go
package handlers

import (
	"volo/database"
	"volo/middleware"
	"volo/models"
	"volo/services"
	"volo/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser returns the caller's profile plus the admin flag.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.Preload("Language").First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"user":     user,
		"is_admin": middleware.IsAdmin(db, userID),
	})
}

type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Avatar      *string `json:"avatar"`
	Email       *string `json:"email"`
}

// UpdateCurrentUser updates the caller's profile fields.
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	db := database.GetDB()
	if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// SearchUsers finds users by username prefix/substring. Queries shorter
// than 2 characters return an empty list without hitting the store; the
// caller is always excluded from results.
func SearchUsers(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	query := c.Query("q")
	if len(query) < 2 {
		return c.JSON(fiber.Map{"success": true, "users": []models.User{}})
	}

	db := database.GetDB()
	var users []models.User
	if err := db.Where("username LIKE ? AND id != ? AND is_guest = ?", "%"+query+"%", userID, false).
		Limit(20).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Search failed"})
	}

	return c.JSON(fiber.Map{"success": true, "users": users})
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// DeleteAccount removes the caller's account. When the account carries a
// password hash the confirmation password is mandatory and must match
// before any mutation happens. Deletion is immediate and cascades to all
// owned records.
func DeleteAccount(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req DeleteAccountRequest
	// Body may be empty for passwordless accounts
	_ = c.BodyParser(&req)

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if user.Password != "" {
		if req.Password == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Password confirmation required"})
		}
		if !utils.CheckPassword(user.Password, req.Password) {
			return c.Status(400).JSON(fiber.Map{"error": "Incorrect password"})
		}
	}

	if err := services.DeleteUserCascade(db, userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete account"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Account deleted"})
}
