package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/httpresp"
	"github.com/cleankart/marketplace-api/internal/middleware"
	"github.com/cleankart/marketplace-api/internal/slot"
	ucBooking "github.com/cleankart/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
	list         *ucBooking.ListBookings
	updateStatus *ucBooking.UpdateStatus
	cancel       *ucBooking.CancelBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	updateStatus *ucBooking.UpdateStatus,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		get:          get,
		list:         list,
		updateStatus: updateStatus,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	VendorID  uint   `json:"vendor_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	SlotDate  string `json:"slot_date" binding:"required"`
	SlotTime  string `json:"slot_time" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	date, err := slot.ParseDate(req.SlotDate)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid slot date"))
		return
	}
	if !slot.IsValidTime(req.SlotTime) {
		httperr.Respond(c, httperr.BadRequest("Invalid slot time"))
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		SlotDate:  date,
		SlotTime:  req.SlotTime,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Booking created successfully", b)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.list.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) VendorBookings(c *gin.Context) {
	vendorID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.list.ForVendor(c.Request.Context(), vendorID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	requesterRole := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := parseID(c.Param("id"), "Booking not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.get.Execute(c.Request.Context(), requesterID, requesterRole, bookingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	vendorID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := parseID(c.Param("id"), "Booking not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request data"))
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), vendorID, bookingID, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Booking status updated", b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := parseID(c.Param("id"), "Booking not found")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), userID, bookingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Booking cancelled successfully", b)
}

// ======================================================
// HELPERS
// ======================================================

// parseID validates a path id before it reaches the database. Anything
// non-numeric behaves exactly like an unknown id.
func parseID(raw, notFound string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, httperr.NotFound(notFound)
	}
	return uint(id), nil
}
