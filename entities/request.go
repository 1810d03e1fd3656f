package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Request struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodID         string    `gorm:"index" json:"food_id"` // weak reference, no foreign key
	FoodName       string    `json:"food_name"`
	DonatorEmail   string    `gorm:"index" json:"donator_email"`
	RequestorEmail string    `gorm:"index" json:"requestor_email"`
	RequestorName  string    `json:"requestor_name"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `gorm:"index;not null;default:'Pending'" json:"status"` // Pending, Accepted, Rejected
	DonationDate   string    `gorm:"type:varchar(10)" json:"donation_date"`
	DonationTime   string    `gorm:"type:varchar(8)" json:"donation_time"`
	Timestamp
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
