package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/cleankart/marketplace-api/internal/domain/booking"
	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns a booking if the requester owns it from either side
// (customer or vendor, depending on the requester's role).
func (uc *GetBooking) Execute(
	ctx context.Context,
	requesterID uint,
	requesterRole string,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Booking not found")
		}
		return nil, err
	}

	switch requesterRole {
	case models.RoleVendor:
		if b.VendorID != requesterID {
			return nil, httperr.Forbidden("Unauthorized access")
		}
	case models.RoleAdmin:
		// admins may read any booking
	default:
		if b.UserID != requesterID {
			return nil, httperr.Forbidden("Unauthorized access")
		}
	}

	return b, nil
}
