package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/httpresp"
	"github.com/cleankart/marketplace-api/internal/middleware"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/notify"
)

type NotificationHandler struct {
	db         *gorm.DB
	dispatcher *notify.Dispatcher
}

func NewNotificationHandler(db *gorm.DB, dispatcher *notify.Dispatcher) *NotificationHandler {
	return &NotificationHandler{db: db, dispatcher: dispatcher}
}

type SendNotificationRequest struct {
	Type string `json:"type" binding:"required"`
}

// List returns the requester's most recent notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, notifications)
}

// SendForBooking composes the message for a booking event, persists the
// record and hands delivery to the worker. The response does not wait
// for delivery.
func (h *NotificationHandler) SendForBooking(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	bookingID, err := parseID(c.Param("bookingId"), "Booking not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("User").
		Preload("Vendor").
		Preload("Service").
		First(&b, bookingID).Error; err != nil {
		httperr.Respond(c, httperr.NotFound("Booking not found"))
		return
	}

	subject, message, err := notify.Compose(req.Type, &b)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	notification := models.Notification{
		UserID:    b.UserID,
		BookingID: &b.ID,
		Kind:      req.Type,
		Subject:   subject,
		Message:   message,
	}

	if err := h.db.Create(&notification).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	if h.dispatcher.HasChannels() {
		h.dispatcher.Dispatch(notify.Job{
			NotificationID: notification.ID,
			Email:          b.User.Email,
			Phone:          b.User.Phone,
			Subject:        subject,
			Message:        message,
			HTML:           notify.ComposeHTML(subject, message, &b),
		})
	}

	httpresp.OKMessage(c, "Notification queued", notification)
}
