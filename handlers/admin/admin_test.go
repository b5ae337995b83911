package admin

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volo/database"
	"volo/middleware"
	"volo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAdminTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-0123456789-0123456789-0123456789")

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
	adminGroup := app.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware, middleware.RequireAdmin)
	adminGroup.Get("/content", GetContentTree)
	adminGroup.Post("/languages", CreateLanguage)
	adminGroup.Put("/languages/:id", UpdateLanguage)
	adminGroup.Delete("/languages/:id", DeleteLanguage)
	adminGroup.Post("/content/units", CreateUnit)
	adminGroup.Post("/content/lessons", CreateLesson)
	adminGroup.Post("/content/exercises", CreateExercise)
	adminGroup.Get("/users", GetUsers)
	adminGroup.Delete("/users/:id", DeleteUser)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) models.User {
	t.Helper()

	user := models.User{Username: username, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&user).Error)
	if isAdmin {
		require.NoError(t, db.Create(&models.AdminUser{UserID: user.ID}).Error)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_guest": user.IsGuest,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-0123456789-0123456789-0123456789"))
	require.NoError(t, err)
	return token
}

func adminRequest(t *testing.T, app *fiber.App, method, path, token, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
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

func TestAdminEndpointsRequireSession(t *testing.T) {
	app, _ := newAdminTestApp(t)

	resp, _ := adminRequest(t, app, "GET", "/api/admin/content", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminEndpointsRejectNonAdmins(t *testing.T) {
	app, db := newAdminTestApp(t)
	user := seedUser(t, db, "plain", false)

	resp, body := adminRequest(t, app, "GET", "/api/admin/content", tokenFor(t, user), "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Contains(t, body["error"], "Admin privileges required")
}

func TestAdminRevocationTakesEffect(t *testing.T) {
	app, db := newAdminTestApp(t)
	user := seedUser(t, db, "temp-admin", true)
	token := tokenFor(t, user)

	resp, _ := adminRequest(t, app, "GET", "/api/admin/content", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Revoking the marker row locks the same token out immediately
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.AdminUser{}).Error)

	resp, _ = adminRequest(t, app, "GET", "/api/admin/content", token, "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateLanguageAndContent(t *testing.T) {
	app, db := newAdminTestApp(t)
	admin := seedUser(t, db, "root", true)
	token := tokenFor(t, admin)

	resp, body := adminRequest(t, app, "POST", "/api/admin/languages", token,
		`{"code":"fr","name":"French","native_name":"Français","flag":"🇫🇷"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	languageID := uint(body["language"].(map[string]interface{})["id"].(float64))

	// Duplicate code is rejected
	resp, _ = adminRequest(t, app, "POST", "/api/admin/languages", token,
		`{"code":"fr","name":"French again"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = adminRequest(t, app, "POST", "/api/admin/content/units", token,
		fmt.Sprintf(`{"language_id":%d,"title":"Basics","order":1}`, languageID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	unitID := uint(body["unit"].(map[string]interface{})["id"].(float64))

	resp, body = adminRequest(t, app, "POST", "/api/admin/content/lessons", token,
		fmt.Sprintf(`{"unit_id":%d,"title":"Greetings","order":1}`, unitID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lessonID := uint(body["lesson"].(map[string]interface{})["id"].(float64))

	resp, _ = adminRequest(t, app, "POST", "/api/admin/content/exercises", token,
		fmt.Sprintf(`{"lesson_id":%d,"type":"select","prompt":"Translate: hello","options":[{"text":"bonjour","is_correct":true},{"text":"au revoir"}]}`, lessonID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var optionCount int64
	db.Model(&models.ExerciseOption{}).Count(&optionCount)
	require.EqualValues(t, 2, optionCount)

	// The tree view includes everything just created
	resp, body = adminRequest(t, app, "GET", "/api/admin/content", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	languages := body["languages"].([]interface{})
	require.Len(t, languages, 1)
}

func TestCreateLessonUnknownUnit(t *testing.T) {
	app, db := newAdminTestApp(t)
	admin := seedUser(t, db, "root", true)

	resp, _ := adminRequest(t, app, "POST", "/api/admin/content/lessons", tokenFor(t, admin),
		`{"unit_id":999,"title":"Orphan"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserRefusesAdmins(t *testing.T) {
	app, db := newAdminTestApp(t)
	root := seedUser(t, db, "root", true)
	other := seedUser(t, db, "other-admin", true)

	resp, _ := adminRequest(t, app, "DELETE",
		fmt.Sprintf("/api/admin/users/%d", other.ID), tokenFor(t, root), "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
