package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/config"
	dbpkg "github.com/cleankart/marketplace-api/internal/db"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/routes"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// setupServer builds the full router over an isolated in-memory database.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	dbpkg.SeedServices(db)

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "8080",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	return r, db, cfg
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

// --------- Account helpers ---------

func registerUser(t *testing.T, r *gin.Engine, email string) (uint, string) {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/register/user", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
		"phone":    "+15550001111",
		"address":  "1 Test Street",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.User.ID, data.Token
}

func registerVendor(t *testing.T, r *gin.Engine, email string, serviceIDs []uint) (uint, string) {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/register/vendor", "", gin.H{
		"name":             "Test Vendor",
		"email":            email,
		"password":         "secret123",
		"phone":            "+15550002222",
		"address":          "2 Vendor Street",
		"description":      "Reliable cleaning",
		"services_offered": serviceIDs,
		"available_slots":  []string{"09:00 AM - 11:00 AM"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Vendor models.Vendor `json:"vendor"`
		Token  string        `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Vendor.ID, data.Token
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   uint(999),
		"email": "admin@cleankart.test",
		"role":  models.RoleAdmin,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func approveVendor(t *testing.T, r *gin.Engine, cfg *config.Config, vendorID uint) {
	t.Helper()

	w, _ := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/vendors/%d/approve", vendorID), adminToken(t, cfg), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func firstService(t *testing.T, db *gorm.DB) models.Service {
	t.Helper()

	var svc models.Service
	require.NoError(t, db.Where("is_active = ?", true).Order("name ASC").First(&svc).Error)
	return svc
}

func createBooking(t *testing.T, r *gin.Engine, token string, vendorID, serviceID uint) models.Booking {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/api/bookings", token, gin.H{
		"vendor_id":  vendorID,
		"service_id": serviceID,
		"slot_date":  "2026-09-15",
		"slot_time":  "10:00 AM - 12:00 PM",
		"address":    "1 Test Street",
		"notes":      "ring the bell",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var b models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &b))
	return b
}
