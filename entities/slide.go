package entities

import (
	"github.com/google/uuid"
)

type Slide struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Alt       string    `json:"alt"`
	Src       string    `json:"src"`
	Align     string    `gorm:"default:'left'" json:"align"` // left, center, right
	Overlay   int       `gorm:"default:40" json:"overlay"`   // darkness percentage, 10..80
	Published bool      `json:"published"`
	SortOrder int       `gorm:"index" json:"order"`

	Timestamp
}
