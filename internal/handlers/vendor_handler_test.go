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
)

func listVendors(t *testing.T, r *gin.Engine, query string) []models.Vendor {
	t.Helper()

	w, env := doRequest(t, r, http.MethodGet, "/api/vendors"+query, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var vendors []models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendors))
	return vendors
}

func TestVendorListDefaultsToApproved(t *testing.T) {
	r, _, cfg := setupServer(t)

	approvedID, _ := registerVendor(t, r, "approved@example.com", []uint{1})
	approveVendor(t, r, cfg, approvedID)
	registerVendor(t, r, "waiting@example.com", []uint{1})

	vendors := listVendors(t, r, "")
	require.Len(t, vendors, 1)
	assert.Equal(t, approvedID, vendors[0].ID)

	all := listVendors(t, r, "?status=all")
	assert.Len(t, all, 2)

	pending := listVendors(t, r, "?status=pending")
	require.Len(t, pending, 1)
	assert.Equal(t, models.VendorPending, pending[0].Status)
}

func TestVendorListFiltersByOfferedService(t *testing.T) {
	r, _, cfg := setupServer(t)

	laundryID, _ := registerVendor(t, r, "laundry@example.com", []uint{1})
	approveVendor(t, r, cfg, laundryID)
	cleaningID, _ := registerVendor(t, r, "cleaning@example.com", []uint{2})
	approveVendor(t, r, cfg, cleaningID)

	vendors := listVendors(t, r, "?serviceId=1")
	require.Len(t, vendors, 1)
	assert.Equal(t, laundryID, vendors[0].ID)

	w, env := doRequest(t, r, http.MethodGet, "/api/vendors/by-service/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byService []models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &byService))
	require.Len(t, byService, 1)
	assert.Equal(t, cleaningID, byService[0].ID)
}

func TestVendorSelfUpdateCannotTouchApprovalOrRating(t *testing.T) {
	r, db, cfg := setupServer(t)

	vendorID, token := registerVendor(t, r, "vendor@example.com", []uint{1})
	approveVendor(t, r, cfg, vendorID)

	require.NoError(t, db.Model(&models.Vendor{}).
		Where("id = ?", vendorID).
		Updates(map[string]any{"rating": 4.5, "total_reviews": 12}).Error)

	w, env := doRequest(t, r, http.MethodPut, "/api/vendors/profile", token, gin.H{
		"name":             "Renamed Vendor",
		"phone":            "+15550009999",
		"address":          "3 New Street",
		"description":      "Now with car wash",
		"services_offered": []uint{1, 7},
		"available_slots":  []string{"02:00 PM - 04:00 PM"},
		"status":           "REJECTED",
		"rating":           1.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Renamed Vendor", updated.Name)
	assert.Equal(t, models.VendorApproved, updated.Status)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, 12, updated.TotalReviews)
}

func TestApproveVendorConflictsWhenAlreadyApproved(t *testing.T) {
	r, _, cfg := setupServer(t)

	vendorID, _ := registerVendor(t, r, "vendor@example.com", []uint{1})
	path := fmt.Sprintf("/api/vendors/%d/approve", vendorID)

	w, _ := doRequest(t, r, http.MethodPatch, path, adminToken(t, cfg), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doRequest(t, r, http.MethodPatch, path, adminToken(t, cfg), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Vendor is already approved", env.Error)
}

func TestApprovalWorkflowIsAdminOnly(t *testing.T) {
	r, _, _ := setupServer(t)

	vendorID, vendorToken := registerVendor(t, r, "vendor@example.com", []uint{1})
	_, userToken := registerUser(t, r, "user@example.com")

	approvePath := fmt.Sprintf("/api/vendors/%d/approve", vendorID)
	rejectPath := fmt.Sprintf("/api/vendors/%d/reject", vendorID)

	w, _ := doRequest(t, r, http.MethodPatch, approvePath, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doRequest(t, r, http.MethodPatch, approvePath, vendorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doRequest(t, r, http.MethodDelete, rejectPath, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRejectTombstonesVendor(t *testing.T) {
	r, db, cfg := setupServer(t)

	vendorID, _ := registerVendor(t, r, "vendor@example.com", []uint{1})

	w, env := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/vendors/%d/reject", vendorID), adminToken(t, cfg), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	// the row survives as a tombstone
	var vendor models.Vendor
	require.NoError(t, db.First(&vendor, vendorID).Error)
	assert.Equal(t, models.VendorRejected, vendor.Status)

	// rejected vendors leave the public listing
	assert.Empty(t, listVendors(t, r, ""))

	// but stay directly readable
	w, env = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/vendors/%d", vendorID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, models.VendorRejected, got.Status)
}

func TestVendorLookupRejectsNonNumericID(t *testing.T) {
	r, _, cfg := setupServer(t)

	vendorID, _ := registerVendor(t, r, "vendor@example.com", []uint{1})
	approveVendor(t, r, cfg, vendorID)

	// a path segment carrying a SQL fragment must behave like an unknown id
	for _, raw := range []string{"424242%20OR%201=1", "abc", "1;--"} {
		w, env := doRequest(t, r, http.MethodGet, "/api/vendors/"+raw, "", nil)
		require.Equal(t, http.StatusNotFound, w.Code, raw)
		assert.Equal(t, "Vendor not found", env.Error)
	}

	w, _ := doRequest(t, r, http.MethodPatch, "/api/vendors/424242%20OR%201=1/approve", adminToken(t, cfg), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = doRequest(t, r, http.MethodDelete, "/api/vendors/424242%20OR%201=1/reject", adminToken(t, cfg), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadPhotoWithoutStorageConfigured(t *testing.T) {
	r, _, _ := setupServer(t)

	_, token := registerVendor(t, r, "vendor@example.com", []uint{1})

	w, env := doRequest(t, r, http.MethodPost, "/api/vendors/profile/photo", token, nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Photo storage is not configured", env.Error)
}
