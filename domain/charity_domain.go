package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCharities  = "charities retrieved successfully"
	MessageSuccessCreateCharity = "charity created successfully"
	MessageSuccessUpdateCharity = "charity updated successfully"
	MessageSuccessDeleteCharity = "charity deleted successfully"
	MessageSuccessCharityQRCode = "charity QR code generated successfully"

	MessageFailedGetCharities  = "failed to retrieve charities"
	MessageFailedCreateCharity = "failed to create charity"
	MessageFailedUpdateCharity = "failed to update charity"
	MessageFailedDeleteCharity = "failed to delete charity"
	MessageFailedCharityQRCode = "failed to generate charity QR code"

	ErrCharityNotFound       = errors.New("charity not found")
	ErrInvalidCharityStatus  = errors.New("invalid charity status")
	ErrCharityNoDonationLink = errors.New("charity has no donation link")
)

type (
	CharityRequest struct {
		Title        string  `json:"title" validate:"required"`
		Excerpt      string  `json:"excerpt" validate:"omitempty,max=300"`
		Category     string  `json:"category" validate:"required,oneof=Education Health Water Food Empowerment"`
		Location     string  `json:"location" validate:"omitempty"`
		Goal         float64 `json:"goal" validate:"required,gt=0"`
		Raised       float64 `json:"raised" validate:"omitempty,gte=0"`
		Status       string  `json:"status" validate:"required,oneof=Draft Published"`
		Cover        string  `json:"cover" validate:"omitempty"`
		DonationLink string  `json:"donation_link" validate:"omitempty,url"`
		Featured     bool    `json:"featured"`
	}

	// UpdateCharityRequest uses pointers so partial updates (the console's
	// publish toggle sends only status) leave other fields untouched.
	UpdateCharityRequest struct {
		Title        *string  `json:"title" validate:"omitempty,min=1"`
		Excerpt      *string  `json:"excerpt" validate:"omitempty,max=300"`
		Category     *string  `json:"category" validate:"omitempty,oneof=Education Health Water Food Empowerment"`
		Location     *string  `json:"location"`
		Goal         *float64 `json:"goal" validate:"omitempty,gt=0"`
		Raised       *float64 `json:"raised" validate:"omitempty,gte=0"`
		Status       *string  `json:"status" validate:"omitempty,oneof=Draft Published"`
		Cover        *string  `json:"cover"`
		DonationLink *string  `json:"donation_link" validate:"omitempty,url"`
		Featured     *bool    `json:"featured"`
	}

	CharityListQuery struct {
		Q      string
		Status string
		Page   int
		Limit  int
	}

	Charity struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Excerpt      string    `json:"excerpt"`
		Category     string    `json:"category"`
		Location     string    `json:"location"`
		Goal         float64   `json:"goal"`
		Raised       float64   `json:"raised"`
		Progress     int       `json:"progress"`
		Status       string    `json:"status"`
		Cover        string    `json:"cover,omitempty"`
		DonationLink string    `json:"donation_link,omitempty"`
		Featured     bool      `json:"featured"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
