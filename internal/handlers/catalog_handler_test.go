package handlers_test

import (
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleankart/marketplace-api/internal/models"
)

func TestListServicesIsPublicAndOrdered(t *testing.T) {
	r, db, _ := setupServer(t)

	// an inactive entry must never show up
	require.NoError(t, db.Create(&models.Service{
		Name:      "Retired Service",
		Category:  models.CategoryCleaning,
		BasePrice: 99,
		IsActive:  false,
	}).Error)

	w, env := doRequest(t, r, http.MethodGet, "/api/bookings/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var services []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &services))
	require.NotEmpty(t, services)

	names := make([]string, 0, len(services))
	for _, svc := range services {
		assert.True(t, svc.IsActive)
		assert.NotEqual(t, "Retired Service", svc.Name)
		names = append(names, svc.Name)
	}
	assert.True(t, sort.StringsAreSorted(names), "expected name-ascending order, got %v", names)
}

func TestListServicesByCategoryNormalizesCase(t *testing.T) {
	r, _, _ := setupServer(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/bookings/services/category/laundry", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var services []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &services))
	require.NotEmpty(t, services)
	for _, svc := range services {
		assert.Equal(t, models.CategoryLaundry, svc.Category)
	}
}

func TestListServicesUnknownCategoryIsEmpty(t *testing.T) {
	r, _, _ := setupServer(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/bookings/services/category/gardening", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var services []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &services))
	assert.Empty(t, services)
}
