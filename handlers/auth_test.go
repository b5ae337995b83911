package handlers

import (
	"net/http"
	"strings"
	"testing"

	"volo/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, db := newTestApp(t)

	resp, body := doRequest(t, app, "POST", "/api/auth/register", "",
		strings.NewReader(`{"username":"mira","password":"hunter22","email":"mira@example.com"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["token"])

	var user models.User
	require.NoError(t, db.Where("username = ?", "mira").First(&user).Error)
	require.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	resp, body = doRequest(t, app, "POST", "/api/auth/login", "",
		strings.NewReader(`{"username":"mira","password":"hunter22"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := newTestApp(t)
	newUser(t, db, "mira", "hunter22")

	resp, body := doRequest(t, app, "POST", "/api/auth/login", "",
		strings.NewReader(`{"username":"mira","password":"wrong"}`))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid credentials", body["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, db := newTestApp(t)
	newUser(t, db, "mira", "hunter22")

	resp, body := doRequest(t, app, "POST", "/api/auth/register", "",
		strings.NewReader(`{"username":"mira","password":"hunter22"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Username already taken", body["error"])
}

func TestGuestLogin(t *testing.T) {
	app, db := newTestApp(t)

	resp, body := doRequest(t, app, "POST", "/api/auth/guest", "", strings.NewReader(`{}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])

	var guest models.User
	require.NoError(t, db.Where("is_guest = ?", true).First(&guest).Error)
	require.Empty(t, guest.Password)
	require.Contains(t, guest.Username, "Guest_")
}
