package booking

import (
	"context"

	"github.com/cleankart/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetVendor(
		ctx context.Context,
		id uint,
	) (*models.Vendor, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListByVendor(
		ctx context.Context,
		vendorID uint,
	) ([]models.Booking, error)
}
