package booking

import (
	"context"

	domain "github.com/cleankart/marketplace-api/internal/domain/booking"
	"github.com/cleankart/marketplace-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListByUser(ctx, userID)
}

func (uc *ListBookings) ForVendor(
	ctx context.Context,
	vendorID uint,
) ([]models.Booking, error) {
	return uc.repo.ListByVendor(ctx, vendorID)
}
