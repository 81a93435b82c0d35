package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	VendorID uint   `gorm:"not null" json:"vendor_id"`
	Vendor   Vendor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vendor"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	SlotDate time.Time `gorm:"not null" json:"slot_date"`
	SlotTime string    `gorm:"size:50;not null" json:"slot_time"`

	Address string `gorm:"size:255;not null" json:"address"`
	Notes   string `gorm:"size:255" json:"notes"`

	// Snapshot of the service base price at creation time; later price
	// changes never touch existing bookings.
	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Payment *Payment `json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
