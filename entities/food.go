package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donator struct {
	Email string `gorm:"index" json:"email"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type RequestStats struct {
	Pending  int `gorm:"not null;default:0" json:"pending"`
	Accepted int `gorm:"not null;default:0" json:"accepted"`
	Rejected int `gorm:"not null;default:0" json:"rejected"`
}

type Food struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name           string     `gorm:"index" json:"name"`
	Image          string     `json:"image,omitempty"`
	Quantity       int        `gorm:"not null;default:0" json:"quantity"`
	Status         string     `gorm:"index;not null;default:'Available'" json:"status"` // Available, Donated
	PickupLocation string     `json:"pickup_location"`
	ExpiredAt      *time.Time `json:"expired_at,omitempty"`
	Notes          string     `json:"notes,omitempty"`

	Donator      Donator      `gorm:"embedded;embeddedPrefix:donator_" json:"donator"`
	DonationDate string       `gorm:"type:varchar(10);index" json:"donation_date"` // YYYY-MM-DD, server local date
	DonationTime string       `gorm:"type:varchar(8)" json:"donation_time"`
	RequestStats RequestStats `gorm:"embedded;embeddedPrefix:request_stats_" json:"request_stats"`
	Timestamp
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
