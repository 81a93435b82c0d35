package models

import "time"

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"uniqueIndex;not null" json:"booking_id"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status string  `gorm:"size:20;default:'PENDING'" json:"status"`

	// Order id assigned by the external gateway, if one was ever created.
	ProviderOrderID string `gorm:"size:100" json:"provider_order_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
