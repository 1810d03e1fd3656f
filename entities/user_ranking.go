package entities

import (
	"time"
)

type UserRanking struct {
	Email          string    `gorm:"primary_key" json:"email"`
	ShareBiteScore int       `gorm:"not null;default:0;index" json:"share_bite_score"`
	Name           string    `json:"name"`
	LastUpdated    time.Time `gorm:"type:timestamp" json:"last_updated"`
}
