// handlers/social.go - Friends and the activity feed
package handlers

import (
	"time"
	"volo/database"
	"volo/middleware"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// feedMemberIDs resolves the accepted-friend set in both edge directions
// and includes the caller.
func feedMemberIDs(db *gorm.DB, userID uint) ([]uint, error) {
	var edges []models.Friend
	if err := db.Where("(user_id = ? OR friend_id = ?) AND status = ?",
		userID, userID, models.FriendStatusAccepted).Find(&edges).Error; err != nil {
		return nil, err
	}

	ids := []uint{userID}
	for _, edge := range edges {
		if edge.UserID == userID {
			ids = append(ids, edge.FriendID)
		} else {
			ids = append(ids, edge.UserID)
		}
	}
	return ids, nil
}

const feedLimit = 50

// GetFriends lists the caller's friend edges in both directions, with the
// other user preloaded.
func GetFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var friends []models.Friend
	if err := db.Preload("User").Preload("Friend").
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Order("created_at DESC").Find(&friends).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch friends"})
	}

	return c.JSON(fiber.Map{"success": true, "friends": friends})
}

type FriendRequestBody struct {
	FriendID uint `json:"friend_id"`
}

// SendFriendRequest creates a pending edge from the caller to the target.
func SendFriendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req FriendRequestBody
	if err := c.BodyParser(&req); err != nil || req.FriendID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "friend_id is required"})
	}

	if req.FriendID == userID {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot befriend yourself"})
	}

	db := database.GetDB()

	var target models.User
	if err := db.First(&target, req.FriendID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var existing models.Friend
	if err := db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, req.FriendID, req.FriendID, userID).First(&existing).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Friend request already exists"})
	}

	edge := models.Friend{
		UserID:   userID,
		FriendID: req.FriendID,
		Status:   models.FriendStatusPending,
	}
	if err := db.Create(&edge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send friend request"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "request": edge})
}

type RespondFriendRequestBody struct {
	Action string `json:"action"` // accept or decline
}

// RespondFriendRequest accepts or declines a pending request. Only the
// addressee may respond; a request addressed to someone else is reported
// as not found so the edge's existence never leaks. A non-pending edge is
// a conflict, not a repeatable transition.
func RespondFriendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request id"})
	}

	var req RespondFriendRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var status string
	switch req.Action {
	case "accept":
		status = models.FriendStatusAccepted
	case "decline":
		status = models.FriendStatusDeclined
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Action must be accept or decline"})
	}

	db := database.GetDB()

	var edge models.Friend
	if err := db.First(&edge, requestID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Friend request not found"})
	}

	if edge.FriendID != userID {
		return c.Status(404).JSON(fiber.Map{"error": "Friend request not found"})
	}

	if edge.Status != models.FriendStatusPending {
		return c.Status(400).JSON(fiber.Map{"error": "Friend request already processed"})
	}

	now := time.Now()
	edge.Status = status
	edge.RespondedAt = &now
	if err := db.Save(&edge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update friend request"})
	}

	if status == models.FriendStatusAccepted {
		db.Create(&models.SocialActivity{
			UserID:   userID,
			Type:     "friend_added",
			IsPublic: true,
		})
	}

	return c.JSON(fiber.Map{"success": true, "request": edge})
}

// GetFeed returns the most recent public activities of the caller's
// accepted friends (both edge directions) plus the caller, newest first.
func GetFeed(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	memberIDs, err := feedMemberIDs(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve friends"})
	}

	var activities []models.SocialActivity
	if err := db.Preload("User").
		Where("user_id IN ? AND is_public = ?", memberIDs, true).
		Order("created_at DESC").Limit(feedLimit).
		Find(&activities).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch feed"})
	}

	return c.JSON(fiber.Map{"success": true, "activities": activities})
}
