package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/httpresp"
	"github.com/cleankart/marketplace-api/internal/images"
	"github.com/cleankart/marketplace-api/internal/middleware"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/storage"
)

type VendorHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewVendorHandler(db *gorm.DB, uploader *storage.Uploader) *VendorHandler {
	return &VendorHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type UpdateVendorProfileRequest struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Description     string   `json:"description"`
	ServicesOffered []uint   `json:"services_offered"`
	AvailableSlots  []string `json:"available_slots"`
}

// --------- Public reads ---------

// List defaults to approved vendors; ?status= widens the filter and
// ?serviceId= narrows to vendors offering that service.
func (h *VendorHandler) List(c *gin.Context) {
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	if status == "" {
		status = models.VendorApproved
	}

	q := h.db.Order("rating DESC")
	if status != "ALL" {
		switch status {
		case models.VendorPending, models.VendorApproved, models.VendorRejected:
			q = q.Where("status = ?", status)
		default:
			httperr.Respond(c, httperr.BadRequest(fmt.Sprintf("Invalid vendor status filter: %s", status)))
			return
		}
	}

	var vendors []models.Vendor
	if err := q.Find(&vendors).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	// Service membership lives in a JSON column, so the filter runs here
	// rather than in SQL.
	if raw := c.Query("serviceId"); raw != "" {
		serviceID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.Respond(c, httperr.BadRequest("Invalid service id"))
			return
		}

		filtered := vendors[:0]
		for _, v := range vendors {
			if v.OffersService(uint(serviceID)) {
				filtered = append(filtered, v)
			}
		}
		vendors = filtered
	}

	httpresp.OK(c, vendors)
}

func (h *VendorHandler) ListByService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("serviceId"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid service id"))
		return
	}

	var vendors []models.Vendor
	if err := h.db.
		Where("status = ?", models.VendorApproved).
		Order("rating DESC").
		Find(&vendors).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	filtered := vendors[:0]
	for _, v := range vendors {
		if v.OffersService(uint(serviceID)) {
			filtered = append(filtered, v)
		}
	}

	httpresp.OK(c, filtered)
}

func (h *VendorHandler) GetByID(c *gin.Context) {
	vendorID, err := parseID(c.Param("id"), "Vendor not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var vendor models.Vendor
	if err := h.db.First(&vendor, vendorID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Vendor not found"))
		return
	}

	httpresp.OK(c, vendor)
}

// --------- Self-service ---------

// UpdateProfile overwrites the vendor's mutable fields. Status and
// rating are never caller-writable.
func (h *VendorHandler) UpdateProfile(c *gin.Context) {
	vendorID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateVendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	var vendor models.Vendor
	if err := h.db.First(&vendor, vendorID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Vendor not found"))
		return
	}

	vendor.Name = req.Name
	vendor.Phone = req.Phone
	vendor.Address = req.Address
	vendor.Description = req.Description
	vendor.ServicesOffered = req.ServicesOffered
	vendor.AvailableSlots = req.AvailableSlots

	if err := h.db.Save(&vendor).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Profile updated successfully", vendor)
}

func (h *VendorHandler) UploadPhoto(c *gin.Context) {
	vendorID := c.MustGet(middleware.ContextUserID).(uint)

	if h.uploader == nil {
		httperr.Respond(c, httperr.Unavailable("Photo storage is not configured"))
		return
	}

	var vendor models.Vendor
	if err := h.db.First(&vendor, vendorID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Vendor not found"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Missing photo file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer file.Close()

	converted, err := images.ToWebP(file)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Unsupported image file"))
		return
	}

	key := fmt.Sprintf("vendors/%s.webp", uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", bytes.NewReader(converted))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	vendor.PhotoURL = url
	if err := h.db.Save(&vendor).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Photo uploaded successfully", gin.H{"photo_url": url})
}

// --------- Admin workflow ---------

func (h *VendorHandler) Approve(c *gin.Context) {
	vendorID, err := parseID(c.Param("id"), "Vendor not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var vendor models.Vendor
	if err := h.db.First(&vendor, vendorID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Vendor not found"))
		return
	}

	if vendor.IsApproved() {
		httperr.Respond(c, httperr.BadRequest("Vendor is already approved"))
		return
	}

	vendor.Status = models.VendorApproved
	if err := h.db.Save(&vendor).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Vendor approved successfully", vendor)
}

// Reject tombstones the vendor instead of deleting the row, so bookings
// that reference it keep resolving.
func (h *VendorHandler) Reject(c *gin.Context) {
	vendorID, err := parseID(c.Param("id"), "Vendor not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var vendor models.Vendor
	if err := h.db.First(&vendor, vendorID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Vendor not found"))
		return
	}

	vendor.Status = models.VendorRejected
	if err := h.db.Save(&vendor).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Vendor rejected and removed from the marketplace", nil)
}
