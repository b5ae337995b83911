package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"volo/models"

	"github.com/stretchr/testify/require"
)

func TestFriendRequestLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	alice := newUser(t, db, "alice", "")
	bob := newUser(t, db, "bob", "")

	resp, body := doRequest(t, app, "POST", "/api/friends/requests", authToken(t, alice),
		strings.NewReader(fmt.Sprintf(`{"friend_id":%d}`, bob.ID)))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	request := body["request"].(map[string]interface{})
	requestID := int(request["id"].(float64))
	path := fmt.Sprintf("/api/friends/requests/%d", requestID)

	// The requester is not the addressee: reported as not found
	resp, _ = doRequest(t, app, "PATCH", path, authToken(t, alice),
		strings.NewReader(`{"action":"accept"}`))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The addressee accepts
	resp, body = doRequest(t, app, "PATCH", path, authToken(t, bob),
		strings.NewReader(`{"action":"accept"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, models.FriendStatusAccepted, body["request"].(map[string]interface{})["status"])

	// A second transition is a conflict
	resp, body = doRequest(t, app, "PATCH", path, authToken(t, bob),
		strings.NewReader(`{"action":"decline"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Friend request already processed", body["error"])
}

func TestFriendRequestFromStrangerLooksMissing(t *testing.T) {
	app, db := newTestApp(t)
	alice := newUser(t, db, "alice", "")
	bob := newUser(t, db, "bob", "")
	eve := newUser(t, db, "eve", "")

	edge := models.Friend{UserID: alice.ID, FriendID: bob.ID, Status: models.FriendStatusPending}
	require.NoError(t, db.Create(&edge).Error)

	resp, body := doRequest(t, app, "PATCH",
		fmt.Sprintf("/api/friends/requests/%d", edge.ID), authToken(t, eve),
		strings.NewReader(`{"action":"accept"}`))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Friend request not found", body["error"])
}

func TestSendFriendRequestToSelf(t *testing.T) {
	app, db := newTestApp(t)
	alice := newUser(t, db, "alice", "")

	resp, _ := doRequest(t, app, "POST", "/api/friends/requests", authToken(t, alice),
		strings.NewReader(fmt.Sprintf(`{"friend_id":%d}`, alice.ID)))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFeedOrderingAndVisibility(t *testing.T) {
	app, db := newTestApp(t)
	alice := newUser(t, db, "alice", "")
	bob := newUser(t, db, "bob", "")
	stranger := newUser(t, db, "stranger", "")

	// Accepted edge with bob as addressee: both directions must resolve
	require.NoError(t, db.Create(&models.Friend{
		UserID: alice.ID, FriendID: bob.ID, Status: models.FriendStatusAccepted,
	}).Error)

	base := time.Now().Add(-time.Hour)
	for i, a := range []models.SocialActivity{
		{UserID: bob.ID, Type: "lesson_completed", IsPublic: true},
		{UserID: alice.ID, Type: "streak_milestone", IsPublic: true},
		{UserID: bob.ID, Type: "challenge_claimed", IsPublic: true},
		{UserID: bob.ID, Type: "lesson_completed", IsPublic: false},
		{UserID: stranger.ID, Type: "lesson_completed", IsPublic: true},
	} {
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&a).Error)
	}

	_, body := doRequest(t, app, "GET", "/api/social/feed", authToken(t, alice), nil)
	activities := body["activities"].([]interface{})
	require.Len(t, activities, 3, "private and stranger activities must be excluded")

	types := make([]string, len(activities))
	for i, raw := range activities {
		types[i] = raw.(map[string]interface{})["type"].(string)
	}
	require.Equal(t, []string{"challenge_claimed", "streak_milestone", "lesson_completed"}, types,
		"feed must be newest first")
}

func TestFeedCapsAtFifty(t *testing.T) {
	app, db := newTestApp(t)
	alice := newUser(t, db, "alice", "")

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 60; i++ {
		require.NoError(t, db.Create(&models.SocialActivity{
			UserID:    alice.ID,
			Type:      "lesson_completed",
			IsPublic:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	_, body := doRequest(t, app, "GET", "/api/social/feed", authToken(t, alice), nil)
	require.Len(t, body["activities"].([]interface{}), 50)
}
