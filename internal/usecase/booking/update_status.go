package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/cleankart/marketplace-api/internal/domain/booking"
	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/models"
)

type UpdateStatus struct {
	repo domain.Repository
}

func NewUpdateStatus(repo domain.Repository) *UpdateStatus {
	return &UpdateStatus{repo: repo}
}

// Execute applies a vendor status write. The raw value is validated
// against the enum and the transition table before anything is stored.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	vendorID uint,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	to, err := domain.Parse(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Booking not found")
		}
		return nil, err
	}

	if b.VendorID != vendorID {
		return nil, httperr.Forbidden("Unauthorized access")
	}

	if err := domain.ApplyVendorTransition(b, to); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
