package payment

import (
	"context"

	"github.com/cleankart/marketplace-api/internal/models"
)

// Order is what the gateway hands back for the client to complete the
// payment against the provider.
type Order struct {
	ProviderOrderID string  `json:"provider_order_id"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
}

type VerifyInput struct {
	ProviderOrderID string `json:"provider_order_id" binding:"required"`
	BookingID       uint   `json:"booking_id" binding:"required"`
}

// Gateway is the seam in front of the payment provider. Handlers receive
// a nil Gateway while payments are disabled and answer 503 themselves;
// enabling payments is wiring-only.
type Gateway interface {
	CreateOrder(ctx context.Context, b *models.Booking) (*Order, error)
	VerifyOrder(ctx context.Context, providerOrderID string) (*Order, error)
}
