package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/httpresp"
	"github.com/cleankart/marketplace-api/internal/middleware"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/payment"
)

const gatewayUnavailable = "Payment gateway is currently under maintenance. Please try again later."

// PaymentHandler exposes order creation and verification behind the
// payments capability flag (nil gateway = disabled) plus the read paths,
// which stay functional either way.
type PaymentHandler struct {
	db      *gorm.DB
	gateway payment.Gateway
}

func NewPaymentHandler(db *gorm.DB, gateway payment.Gateway) *PaymentHandler {
	return &PaymentHandler{db: db, gateway: gateway}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	if h.gateway == nil {
		httperr.Respond(c, httperr.Unavailable(gatewayUnavailable))
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := parseID(c.Param("bookingId"), "Booking not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("User").
		Preload("Service").
		Preload("Payment").
		First(&b, bookingID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Booking not found"))
		return
	}

	if b.UserID != userID {
		httperr.Respond(c, httperr.Forbidden("Unauthorized access"))
		return
	}

	if b.Payment != nil && b.Payment.Status == models.PaymentCompleted {
		httperr.Respond(c, httperr.BadRequest("Payment already completed for this booking"))
		return
	}

	order, err := h.gateway.CreateOrder(c.Request.Context(), &b)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	p := b.Payment
	if p == nil {
		p = &models.Payment{BookingID: b.ID}
	}
	p.Amount = b.TotalAmount
	p.Status = models.PaymentPending
	p.ProviderOrderID = order.ProviderOrderID

	if err := h.db.Save(p).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Order created successfully", order)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	if h.gateway == nil {
		httperr.Respond(c, httperr.Unavailable(gatewayUnavailable))
		return
	}

	var req payment.VerifyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	var p models.Payment
	if err := h.db.Where("booking_id = ?", req.BookingID).First(&p).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Payment not found"))
		return
	}

	order, err := h.gateway.VerifyOrder(c.Request.Context(), req.ProviderOrderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if order.Status == "approved" {
		p.Status = models.PaymentCompleted
	} else {
		p.Status = models.PaymentFailed
	}

	if err := h.db.Save(&p).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Payment verified successfully", p)
}

// --------- Reads ---------

func (h *PaymentHandler) GetByBooking(c *gin.Context) {
	bookingID, err := parseID(c.Param("bookingId"), "Payment not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var p models.Payment
	if err := h.db.Where("booking_id = ?", bookingID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.NotFound("Payment not found"))
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) ListAll(c *gin.Context) {
	var payments []models.Payment
	if err := h.db.Order("created_at DESC").Find(&payments).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, payments)
}
