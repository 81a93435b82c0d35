package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	VendorPending  = "PENDING"
	VendorApproved = "APPROVED"
	VendorRejected = "REJECTED"
)

// Vendor is a provider account, separate from User. Rejection keeps the
// row as a tombstone so historical bookings still resolve.
type Vendor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	Description  string `gorm:"size:500" json:"description"`

	ServicesOffered datatypes.JSONSlice[uint]   `json:"services_offered"`
	AvailableSlots  datatypes.JSONSlice[string] `json:"available_slots"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Vendor) IsApproved() bool {
	return v.Status == VendorApproved
}

func (v *Vendor) OffersService(serviceID uint) bool {
	for _, id := range v.ServicesOffered {
		if id == serviceID {
			return true
		}
	}
	return false
}
