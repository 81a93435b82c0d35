package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/cleankart/marketplace-api/internal/domain/booking"
	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/models"
)

type CancelBooking struct {
	repo domain.Repository
}

func NewCancelBooking(repo domain.Repository) *CancelBooking {
	return &CancelBooking{repo: repo}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Booking not found")
		}
		return nil, err
	}

	if b.UserID != userID {
		return nil, httperr.Forbidden("Unauthorized access")
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
