package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volo/database"
	"volo/middleware"
	"volo/models"
	"volo/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the API routes against a fresh in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-0123456789-0123456789-0123456789")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	database.SetDB(db)

	app := fiber.New()

	api := app.Group("/api")
	api.Post("/auth/register", Register)
	api.Post("/auth/login", Login)
	api.Post("/auth/guest", GuestLogin)
	api.Get("/languages", GetLanguages)
	api.Get("/languages/:code", GetLanguage)

	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", GetCurrentUser)
	userGroup.Put("/me", UpdateCurrentUser)
	userGroup.Put("/me/language", SetUserLanguage)
	userGroup.Delete("/me", DeleteAccount)
	userGroup.Get("/search", SearchUsers)

	api.Get("/lessons/:id", middleware.AuthMiddleware, GetLesson)

	challengeGroup := api.Group("/challenges")
	challengeGroup.Use(middleware.AuthMiddleware)
	challengeGroup.Get("/daily", GetDailyChallenges)
	challengeGroup.Post("/:id/claim", ClaimChallenge)

	api.Get("/social/feed", middleware.AuthMiddleware, GetFeed)

	friendGroup := api.Group("/friends")
	friendGroup.Use(middleware.AuthMiddleware)
	friendGroup.Get("/", GetFriends)
	friendGroup.Post("/requests", SendFriendRequest)
	friendGroup.Patch("/requests/:id", RespondFriendRequest)

	api.Get("/leaderboard", GetLeaderboard)
	api.Get("/srs/due", middleware.OptionalAuth, GetDueFlashcards)
	api.Get("/settings", middleware.AuthMiddleware, GetSettings)
	api.Put("/settings", middleware.AuthMiddleware, SaveSettings)
	api.Get("/onboarding/status", middleware.AuthMiddleware, GetOnboardingStatus)
	api.Post("/notifications/read", middleware.AuthMiddleware, MarkNotificationsRead)

	return app, db
}

// newUser persists a user with an optional password.
func newUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Hearts:       5,
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
	}
	if password != "" {
		hash, err := utils.HashPassword(password)
		require.NoError(t, err)
		user.Password = hash
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := generateToken(user)
	require.NoError(t, err)
	return token
}

// doRequest performs a request against the test app and decodes the JSON body.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body io.Reader) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}
