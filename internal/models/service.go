package models

import "time"

const (
	CategoryLaundry  = "LAUNDRY"
	CategoryCleaning = "CLEANING"
	CategoryCarWash  = "CAR_WASH"
)

// Service is static catalog reference data.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Category  string  `gorm:"size:20;not null" json:"category"`
	BasePrice float64 `gorm:"not null" json:"base_price"`
	IsActive  bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
