package entities

import (
	"github.com/google/uuid"
)

type Payment struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Method            string    `gorm:"index" json:"method"`   // EVC or EDAHAB
	Currency          string    `gorm:"index" json:"currency"` // USD or SOS
	Amount            float64   `json:"amount"`
	Status            string    `gorm:"index" json:"status"` // success, pending, failed
	Reference         string    `gorm:"uniqueIndex" json:"reference"`
	ProviderReference string    `json:"provider_reference,omitempty"`
	Note              string    `json:"note,omitempty"`

	Timestamp
}
