package entities

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Date        time.Time `gorm:"index" json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CoverImage  string    `json:"cover_image"`
	Published   bool      `json:"published"`

	Timestamp
}
