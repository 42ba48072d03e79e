package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`                            // bcrypt hash, never serialized
	Role     string    `gorm:"default:'Viewer'" json:"role"` // Admin, Moderator, Viewer
	IsActive bool      `gorm:"default:true" json:"is_active"`

	NotificationSetting *NotificationSetting `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type NotificationSetting struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	EmailEnabled        bool      `gorm:"default:true" json:"email_enabled"`
	InappEnabled        bool      `gorm:"default:true" json:"inapp_enabled"`
	VolunteerRegistered bool      `gorm:"default:true" json:"volunteer_registered"`
	TransactionSent     bool      `gorm:"default:true" json:"transaction_sent"`
	CharityPublished    bool      `gorm:"default:true" json:"charity_published"`
	DonationReceived    bool      `gorm:"default:true" json:"donation_received"`
	ContactMessage      bool      `gorm:"default:true" json:"contact_message"`

	Timestamp
}
