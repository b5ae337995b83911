// handlers/live.go - Websocket push of the friend activity feed
package handlers

import (
	"log"
	"os"
	"time"
	"volo/database"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

const feedPollInterval = 10 * time.Second

// FeedUpgrade authenticates the websocket handshake. Browsers cannot set
// an Authorization header on a websocket, so the token is accepted as a
// query parameter too.
func FeedUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	tokenString := c.Query("token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if len(auth) > 7 && auth[:7] == "Bearer " {
			tokenString = auth[7:]
		}
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Missing token"})
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	c.Locals("userId", uint(id))
	return c.Next()
}

// LiveFeed streams new public friend activities to the client. It polls
// the store on an interval rather than fanning out writes; feed volume
// does not justify a broker.
func LiveFeed(conn *websocket.Conn) {
	userID, ok := conn.Locals("userId").(uint)
	if !ok {
		conn.Close()
		return
	}

	db := database.GetDB()

	// Drop the connection when the client goes away
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	lastSeen := time.Now()
	ticker := time.NewTicker(feedPollInterval)
	defer ticker.Stop()
	defer conn.Close()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			memberIDs, err := feedMemberIDs(db, userID)
			if err != nil {
				log.Printf("live feed: failed to resolve friends for user %d: %v", userID, err)
				continue
			}

			var activities []models.SocialActivity
			if err := db.Preload("User").
				Where("user_id IN ? AND is_public = ? AND created_at > ?", memberIDs, true, lastSeen).
				Order("created_at ASC").Find(&activities).Error; err != nil {
				continue
			}

			for _, activity := range activities {
				if err := conn.WriteJSON(activity); err != nil {
					return
				}
				if activity.CreatedAt.After(lastSeen) {
					lastSeen = activity.CreatedAt
				}
			}
		}
	}
}
