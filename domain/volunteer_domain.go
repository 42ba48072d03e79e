package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetVolunteers         = "volunteers retrieved successfully"
	MessageSuccessApplyVolunteer        = "volunteer application submitted successfully"
	MessageSuccessDeleteVolunteer       = "volunteer application deleted successfully"
	MessageSuccessUpdateVolunteerStatus = "volunteer status updated and email sent"
	MessageSuccessSendVolunteerEmail    = "email sent successfully"

	MessageFailedGetVolunteers         = "failed to retrieve volunteers"
	MessageFailedApplyVolunteer        = "failed to submit volunteer application"
	MessageFailedDeleteVolunteer       = "failed to delete volunteer application"
	MessageFailedUpdateVolunteerStatus = "failed to update volunteer status"
	MessageFailedSendVolunteerEmail    = "failed to send email"

	ErrVolunteerNotFound      = errors.New("volunteer not found")
	ErrInvalidVolunteerStatus = errors.New("invalid volunteer status")
)

type (
	VolunteerApplicationRequest struct {
		FullName     string                `json:"full_name" form:"full_name" validate:"required"`
		Email        string                `json:"email" form:"email" validate:"required,email"`
		Phone        string                `json:"phone" form:"phone" validate:"required"`
		City         string                `json:"city" form:"city" validate:"required"`
		District     string                `json:"district" form:"district" validate:"omitempty"`
		Availability string                `json:"availability" form:"availability" validate:"omitempty"`
		Role         string                `json:"role" form:"role" validate:"omitempty"`
		Interests    []string              `json:"interests" form:"interests" validate:"omitempty"`
		Skills       string                `json:"skills" form:"skills" validate:"omitempty"`
		Message      string                `json:"message" form:"message" validate:"omitempty,max=1000"`
		CVFile       *multipart.FileHeader `json:"-" form:"cv_file"`
	}

	UpdateVolunteerStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}

	SendVolunteerEmailRequest struct {
		VolunteerID string `json:"volunteer_id" validate:"required,uuid"`
		Email       string `json:"email" validate:"required,email"`
		Subject     string `json:"subject" validate:"required"`
		Message     string `json:"message" validate:"required"`
	}

	VolunteerListQuery struct {
		Q      string
		Status string
	}

	Volunteer struct {
		ID           string    `json:"id"`
		FullName     string    `json:"full_name"`
		Email        string    `json:"email"`
		Phone        string    `json:"phone"`
		City         string    `json:"city"`
		District     string    `json:"district"`
		Availability string    `json:"availability"`
		Role         string    `json:"role"`
		Interests    []string  `json:"interests"`
		Skills       string    `json:"skills,omitempty"`
		Message      string    `json:"message,omitempty"`
		Status       string    `json:"status"`
		CVFile       string    `json:"cv_file,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	VolunteerTotals struct {
		Total    int64 `json:"total"`
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Rejected int64 `json:"rejected"`
	}
)
