package entities

import (
	"github.com/google/uuid"
)

type Charity struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title        string    `gorm:"index" json:"title"`
	Excerpt      string    `json:"excerpt"`
	Category     string    `json:"category"` // Education, Health, Water, Food, Empowerment
	Location     string    `json:"location"`
	Goal         float64   `json:"goal"`
	Raised       float64   `json:"raised"`
	Status       string    `gorm:"default:'Draft'" json:"status"` // Draft or Published
	Cover        string    `json:"cover"`
	DonationLink string    `json:"donation_link"`
	Featured     bool      `json:"featured"`

	Timestamp
}
