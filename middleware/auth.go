// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"
	"volo/database"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthMiddleware resolves the session token into an identity. Requests
// without a valid token never reach the handler; absence of a token is a
// normal 401, not a server error.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, ok := parseToken(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return c.Status(401).JSON(fiber.Map{"error": "Token expired"})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("isGuest", claims["is_guest"])

	updateUserActivity(claims["user_id"])

	return c.Next()
}

// OptionalAuth resolves the session identity when a valid token is
// present but lets anonymous requests through. Handlers behind it decide
// how an unauthenticated caller is authorized.
func OptionalAuth(c *fiber.Ctx) error {
	claims, ok := parseToken(c)
	if ok {
		if exp, ok := claims["exp"].(float64); ok && time.Unix(int64(exp), 0).After(time.Now()) {
			c.Locals("userId", claims["user_id"])
			c.Locals("username", claims["username"])
			c.Locals("isGuest", claims["is_guest"])
			updateUserActivity(claims["user_id"])
		}
	}
	return c.Next()
}

// RequireAdmin gates admin endpoints. The capability is the existence of
// an admin_users row for the caller, checked per request so revocation
// takes effect immediately. Must run after AuthMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "User not authenticated"})
	}

	db := database.GetDB()
	var admin models.AdminUser
	if err := db.Where("user_id = ?", userID).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin privileges required."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify privileges"})
	}

	c.Locals("adminRole", admin.Role)

	return c.Next()
}

// IsAdmin reports whether an admin marker row exists for the user.
func IsAdmin(db *gorm.DB, userID uint) bool {
	var count int64
	db.Model(&models.AdminUser{}).Where("user_id = ?", userID).Count(&count)
	return count > 0
}

func parseToken(c *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	jwtSecret := os.Getenv("JWT_SECRET")

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	return claims, true
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

func GetUsername(c *fiber.Ctx) (string, error) {
	username := c.Locals("username")
	if username == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}

	if name, ok := username.(string); ok {
		return name, nil
	}

	return "", fiber.NewError(401, "Invalid username format")
}

func IsGuest(c *fiber.Ctx) bool {
	isGuest := c.Locals("isGuest")
	if isGuest == nil {
		return false
	}

	if guest, ok := isGuest.(bool); ok {
		return guest
	}

	return false
}

// updateUserActivity updates the user's last activity timestamp
func updateUserActivity(userID interface{}) {
	if userID == nil {
		return
	}

	db := database.GetDB()
	if db == nil {
		return
	}

	var id uint
	switch v := userID.(type) {
	case float64:
		id = uint(v)
	case uint:
		id = v
	default:
		return
	}

	now := time.Now()
	db.Model(&models.User{}).Where("id = ?", id).Update("last_activity", now)
}
