// handlers/admin/users.go - User administration
package admin

import (
	"volo/database"
	"volo/models"
	"volo/services"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns all users with pagination
func GetUsers(c *fiber.Ctx) error {
	db := database.GetDB()

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	search := c.Query("search", "")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var users []models.User
	var total int64

	query := db.Model(&models.User{})

	if search != "" {
		query = query.Where("username LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser returns a single user by ID
func GetUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.Preload("Settings").First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

type AdminUpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	TotalXP     *int    `json:"total_xp"`
	Hearts      *int    `json:"hearts"`
}

// UpdateUser edits a user's profile and counters.
func UpdateUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var req AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.TotalXP != nil && *req.TotalXP >= 0 {
		user.TotalXP = *req.TotalXP
	}
	if req.Hearts != nil && *req.Hearts >= 0 {
		user.Hearts = *req.Hearts
	}

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// DeleteUser removes a user account and all owned records.
func DeleteUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	// Admins must be demoted before deletion
	var marker models.AdminUser
	if err := db.Where("user_id = ?", user.ID).First(&marker).Error; err == nil {
		return c.Status(403).JSON(fiber.Map{"error": "Cannot delete admin users"})
	}

	if err := services.DeleteUserCascade(db, user.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}
