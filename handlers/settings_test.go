package handlers

import (
	"net/http"
	"strings"
	"testing"

	"volo/models"
	"volo/services"

	"github.com/stretchr/testify/require"
)

func TestSettingsCreatedOnFirstRead(t *testing.T) {
	app, db := newTestApp(t)
	user := newUser(t, db, "mira", "")

	resp, body := doRequest(t, app, "GET", "/api/settings", authToken(t, user), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	settings := body["settings"].(map[string]interface{})
	require.Equal(t, "system", settings["theme"])
	require.Equal(t, false, settings["assessment_completed"])

	var count int64
	db.Model(&models.UserSettings{}).Where("user_id = ?", user.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestSaveSettingsPartialUpdate(t *testing.T) {
	app, db := newTestApp(t)
	user := newUser(t, db, "mira", "")

	resp, _ := doRequest(t, app, "PUT", "/api/settings", authToken(t, user),
		strings.NewReader(`{"theme":"dark","assessment_completed":true}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings models.UserSettings
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&settings).Error)
	require.Equal(t, "dark", settings.Theme)
	require.True(t, settings.AssessmentCompleted)
	require.True(t, settings.SoundEnabled, "untouched flags keep their defaults")
}

func TestSaveSettingsRejectsUnknownTheme(t *testing.T) {
	app, db := newTestApp(t)
	user := newUser(t, db, "mira", "")

	resp, _ := doRequest(t, app, "PUT", "/api/settings", authToken(t, user),
		strings.NewReader(`{"theme":"neon"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOnboardingStatus(t *testing.T) {
	app, db := newTestApp(t)
	fresh := newUser(t, db, "fresh", "")
	done := newUser(t, db, "done", "")
	require.NoError(t, db.Create(&models.UserSettings{UserID: done.ID, AssessmentCompleted: true}).Error)

	_, body := doRequest(t, app, "GET", "/api/onboarding/status", authToken(t, fresh), nil)
	require.Equal(t, false, body["completed"])
	require.Equal(t, services.OnboardingPath, body["redirect"])

	_, body = doRequest(t, app, "GET", "/api/onboarding/status", authToken(t, done), nil)
	require.Equal(t, true, body["completed"])
	require.Equal(t, services.DashboardPath, body["redirect"])
}

func TestMarkNotificationsReadNotImplemented(t *testing.T) {
	app, db := newTestApp(t)
	user := newUser(t, db, "mira", "")

	resp, body := doRequest(t, app, "POST", "/api/notifications/read", authToken(t, user), nil)
	require.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	require.Equal(t, false, body["success"])
}
