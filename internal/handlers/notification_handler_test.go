package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/notify"
)

func TestSendNotificationPersistsComposedMessage(t *testing.T) {
	r, db, cfg := setupServer(t)

	svc := firstService(t, db)
	vendorID, _ := registerVendor(t, r, "vendor@example.com", []uint{svc.ID})
	approveVendor(t, r, cfg, vendorID)
	_, userToken := registerUser(t, r, "booker@example.com")
	b := createBooking(t, r, userToken, vendorID, svc.ID)

	w, env := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/notifications/booking/%d", b.ID), userToken, gin.H{
		"type": notify.KindCreated,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Notification queued", env.Message)

	var n models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &n))
	assert.Equal(t, notify.KindCreated, n.Kind)
	assert.Equal(t, "Booking Created - CleanKart", n.Subject)
	assert.Contains(t, n.Message, "Test User")
	assert.Contains(t, n.Message, svc.Name)

	// the record lands in the store even with no channels configured
	var stored models.Notification
	require.NoError(t, db.First(&stored, n.ID).Error)
	assert.False(t, stored.IsSent)
	require.NotNil(t, stored.BookingID)
	assert.Equal(t, b.ID, *stored.BookingID)
}

func TestSendNotificationRejectsUnknownType(t *testing.T) {
	r, db, cfg := setupServer(t)

	svc := firstService(t, db)
	vendorID, _ := registerVendor(t, r, "vendor@example.com", []uint{svc.ID})
	approveVendor(t, r, cfg, vendorID)
	_, userToken := registerUser(t, r, "booker@example.com")
	b := createBooking(t, r, userToken, vendorID, svc.ID)

	w, env := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/notifications/booking/%d", b.ID), userToken, gin.H{
		"type": "SHIPPED",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid notification type: SHIPPED", env.Error)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSendNotificationRejectsNonNumericBookingID(t *testing.T) {
	r, db, _ := setupServer(t)

	_, userToken := registerUser(t, r, "booker@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/notifications/booking/1%20OR%201=1", userToken, gin.H{
		"type": notify.KindCreated,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", env.Error)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestNotificationListIsScopedAndNewestFirst(t *testing.T) {
	r, db, cfg := setupServer(t)

	svc := firstService(t, db)
	vendorID, _ := registerVendor(t, r, "vendor@example.com", []uint{svc.ID})
	approveVendor(t, r, cfg, vendorID)
	userID, userToken := registerUser(t, r, "booker@example.com")
	otherID, otherToken := registerUser(t, r, "other@example.com")
	b := createBooking(t, r, userToken, vendorID, svc.ID)

	for _, kind := range []string{notify.KindCreated, notify.KindConfirmed} {
		w, _ := doRequest(t, r, http.MethodPost, fmt.Sprintf("/api/notifications/booking/%d", b.ID), userToken, gin.H{"type": kind})
		require.Equal(t, http.StatusOK, w.Code)
	}
	require.NoError(t, db.Create(&models.Notification{
		UserID:  otherID,
		Kind:    notify.KindCancelled,
		Subject: "Booking Cancelled - CleanKart",
		Message: "unrelated",
	}).Error)

	w, env := doRequest(t, r, http.MethodGet, "/api/notifications", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var mine []models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 2)
	for _, n := range mine {
		assert.Equal(t, userID, n.UserID)
	}
	assert.GreaterOrEqual(t, mine[0].ID, mine[1].ID)

	w, env = doRequest(t, r, http.MethodGet, "/api/notifications", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var theirs []models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &theirs))
	assert.Len(t, theirs, 1)
}
