package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/config"
	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/httpresp"
	"github.com/cleankart/marketplace-api/internal/middleware"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type RegisterVendorRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	Phone           string   `json:"phone" binding:"required"`
	Address         string   `json:"address" binding:"required"`
	Description     string   `json:"description"`
	ServicesOffered []uint   `json:"services_offered"`
	AvailableSlots  []string `json:"available_slots"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Registration ---------

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	email, err := h.normalizeEmail(req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Respond(c, httperr.BadRequest("Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := h.generateToken(user.ID, user.Email, user.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) RegisterVendor(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	email, err := h.normalizeEmail(req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var count int64
	h.db.Model(&models.Vendor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Respond(c, httperr.BadRequest("Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	// New vendors wait for admin approval before they can take bookings.
	vendor := models.Vendor{
		Name:            req.Name,
		Email:           email,
		PasswordHash:    string(hash),
		Phone:           req.Phone,
		Address:         req.Address,
		Description:     req.Description,
		ServicesOffered: req.ServicesOffered,
		AvailableSlots:  req.AvailableSlots,
		Status:          models.VendorPending,
	}

	if err := h.db.Create(&vendor).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := h.generateToken(vendor.ID, vendor.Email, models.RoleVendor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Vendor registered successfully", gin.H{
		"vendor": vendor,
		"token":  token,
	})
}

// --------- Login ---------

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Respond(c, invalidCredentials(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Respond(c, httperr.Unauthorized("Invalid email or password"))
		return
	}

	token, err := h.generateToken(user.ID, user.Email, user.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) LoginVendor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var vendor models.Vendor
	if err := h.db.Where("email = ?", email).First(&vendor).Error; err != nil {
		httperr.Respond(c, invalidCredentials(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Respond(c, httperr.Unauthorized("Invalid email or password"))
		return
	}

	token, err := h.generateToken(vendor.ID, vendor.Email, models.RoleVendor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Login successful", gin.H{
		"vendor": vendor,
		"token":  token,
	})
}

// --------- Profiles ---------

func (h *AuthHandler) UserProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("User not found"))
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) VendorProfile(c *gin.Context) {
	vendorID := c.MustGet(middleware.ContextUserID).(uint)

	var vendor models.Vendor
	if err := h.db.First(&vendor, vendorID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Vendor not found"))
		return
	}

	httpresp.OK(c, vendor)
}

// --------- Helpers ---------

func (h *AuthHandler) normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))

	if h.config.StrictEmailCheck && !validators.IsEmailDomainValid(email) {
		return "", httperr.BadRequest("Email domain does not appear to be valid")
	}

	return email, nil
}

// invalidCredentials keeps the unknown-email and bad-password cases
// indistinguishable to the client.
func invalidCredentials(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.Unauthorized("Invalid email or password")
	}
	return err
}

func (h *AuthHandler) generateToken(id uint, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
