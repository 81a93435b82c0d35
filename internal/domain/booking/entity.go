package booking

import (
	"github.com/cleankart/marketplace-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ApplyVendorTransition(b *models.Booking, to Status) error {
	if err := CanVendorTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)
	return nil
}

func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}
