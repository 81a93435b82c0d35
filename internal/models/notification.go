package models

import "time"

// Notification is an append-only delivery log. Per-channel outcome is
// tracked separately; is_sent flips only when at least one channel
// actually delivered.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint  `gorm:"not null;index" json:"user_id"`
	BookingID *uint `json:"booking_id"`

	Kind    string `gorm:"size:20;not null" json:"kind"`
	Subject string `gorm:"size:150" json:"subject"`
	Message string `gorm:"size:500;not null" json:"message"`

	EmailSent bool `gorm:"default:false" json:"email_sent"`
	SMSSent   bool `gorm:"default:false" json:"sms_sent"`

	IsSent    bool       `gorm:"default:false" json:"is_sent"`
	SentAt    *time.Time `json:"sent_at"`
	Attempts  int        `gorm:"default:0" json:"attempts"`
	LastError string     `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
