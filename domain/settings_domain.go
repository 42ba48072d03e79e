package domain

import "errors"

var (
	MessageSuccessGetAccount          = "account settings retrieved successfully"
	MessageSuccessUpdateAccount       = "account settings saved"
	MessageSuccessGetNotifications    = "notification preferences retrieved successfully"
	MessageSuccessUpdateNotifications = "notification preferences updated"

	MessageFailedGetAccount          = "failed to retrieve account settings"
	MessageFailedUpdateAccount       = "failed to save account settings"
	MessageFailedGetNotifications    = "failed to retrieve notification preferences"
	MessageFailedUpdateNotifications = "failed to update notification preferences"

	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)

type (
	UpdateAccountRequest struct {
		FullName        string `json:"full_name" validate:"required"`
		CurrentPassword string `json:"current_password" validate:"omitempty"`
		NewPassword     string `json:"new_password" validate:"omitempty,min=6"`
		ConfirmPassword string `json:"confirm_password" validate:"required_with=NewPassword,eqfield=NewPassword"`
	}

	NotificationPreferences struct {
		EmailEnabled        bool `json:"email_enabled"`
		InappEnabled        bool `json:"inapp_enabled"`
		VolunteerRegistered bool `json:"volunteer_registered"`
		TransactionSent     bool `json:"transaction_sent"`
		CharityPublished    bool `json:"charity_published"`
		DonationReceived    bool `json:"donation_received"`
		ContactMessage      bool `json:"contact_message"`
	}
)
