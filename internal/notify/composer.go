package notify

import (
	"fmt"

	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/models"
	"github.com/cleankart/marketplace-api/internal/slot"
)

const (
	KindCreated   = "CREATED"
	KindConfirmed = "CONFIRMED"
	KindCompleted = "COMPLETED"
	KindCancelled = "CANCELLED"
)

// Compose builds the subject and plain-text message for a booking event.
// The booking must carry its User, Vendor and Service relations.
func Compose(kind string, b *models.Booking) (subject, message string, err error) {
	switch kind {
	case KindCreated:
		subject = "Booking Created - CleanKart"
		message = fmt.Sprintf(
			"Hi %s, your booking for %s has been created. Booking ID: %d",
			b.User.Name, b.Service.Name, b.ID,
		)
	case KindConfirmed:
		subject = "Booking Confirmed - CleanKart"
		message = fmt.Sprintf(
			"Hi %s, your booking for %s has been confirmed by %s. Date: %s, Time: %s",
			b.User.Name, b.Service.Name, b.Vendor.Name,
			b.SlotDate.Format(slot.DateLayout), b.SlotTime,
		)
	case KindCompleted:
		subject = "Booking Completed - CleanKart"
		message = fmt.Sprintf(
			"Hi %s, your booking for %s has been completed. Thank you for using CleanKart!",
			b.User.Name, b.Service.Name,
		)
	case KindCancelled:
		subject = "Booking Cancelled - CleanKart"
		message = fmt.Sprintf(
			"Hi %s, your booking for %s has been cancelled.",
			b.User.Name, b.Service.Name,
		)
	default:
		return "", "", httperr.BadRequest(fmt.Sprintf("Invalid notification type: %s", kind))
	}
	return subject, message, nil
}

// ComposeHTML wraps the message with the booking details block used in
// the email channel.
func ComposeHTML(subject, message string, b *models.Booking) string {
	return fmt.Sprintf(`<h2>%s</h2>
<p>%s</p>
<hr />
<p><strong>Service:</strong> %s</p>
<p><strong>Vendor:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Address:</strong> %s</p>`,
		subject, message,
		b.Service.Name, b.Vendor.Name,
		b.SlotDate.Format(slot.DateLayout), b.SlotTime, b.Address,
	)
}
