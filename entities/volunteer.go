package entities

import (
	"github.com/google/uuid"
)

type Volunteer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `gorm:"index" json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	District     string    `json:"district"`
	Availability string    `json:"availability"`
	Role         string    `json:"role"`
	Interests    []string  `gorm:"serializer:json" json:"interests"`
	Skills       string    `json:"skills,omitempty"`
	Message      string    `json:"message,omitempty"`
	Status       string    `gorm:"index;default:'pending'" json:"status"` // pending, approved, rejected
	CVFile       string    `json:"cv_file,omitempty"`

	Timestamp
}
