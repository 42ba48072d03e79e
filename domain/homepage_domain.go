package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSlides   = "slides retrieved successfully"
	MessageSuccessCreateSlide = "slide created successfully"
	MessageSuccessUpdateSlide = "slide updated successfully"
	MessageSuccessDeleteSlide = "slide deleted successfully"
	MessageSuccessMoveSlide   = "slide reordered successfully"

	MessageFailedGetSlides   = "failed to retrieve slides"
	MessageFailedCreateSlide = "failed to create slide"
	MessageFailedUpdateSlide = "failed to update slide"
	MessageFailedDeleteSlide = "failed to delete slide"
	MessageFailedMoveSlide   = "failed to reorder slide"

	MessageSuccessGetEvents   = "events retrieved successfully"
	MessageSuccessCreateEvent = "event created successfully"
	MessageSuccessUpdateEvent = "event updated successfully"
	MessageSuccessDeleteEvent = "event deleted successfully"

	MessageFailedGetEvents   = "failed to retrieve events"
	MessageFailedCreateEvent = "failed to create event"
	MessageFailedUpdateEvent = "failed to update event"
	MessageFailedDeleteEvent = "failed to delete event"

	ErrSlideNotFound        = errors.New("slide not found")
	ErrInvalidMoveDirection = errors.New("invalid move direction")
	ErrEventNotFound        = errors.New("event not found")
)

const (
	MoveUp   = "up"
	MoveDown = "down"

	DefaultOverlay = 40
)

type (
	SlideRequest struct {
		Title     string `json:"title" validate:"required"`
		Subtitle  string `json:"subtitle" validate:"omitempty"`
		Alt       string `json:"alt" validate:"omitempty"`
		Src       string `json:"src" validate:"required"`
		Align     string `json:"align" validate:"omitempty,oneof=left center right"`
		Overlay   int    `json:"overlay" validate:"omitempty,min=10,max=80"`
		Published bool   `json:"published"`
	}

	UpdateSlideRequest struct {
		Title     *string `json:"title" validate:"omitempty,min=1"`
		Subtitle  *string `json:"subtitle"`
		Alt       *string `json:"alt"`
		Src       *string `json:"src"`
		Align     *string `json:"align" validate:"omitempty,oneof=left center right"`
		Overlay   *int    `json:"overlay" validate:"omitempty,min=10,max=80"`
		Published *bool   `json:"published"`
	}

	Slide struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Subtitle  string    `json:"subtitle,omitempty"`
		Alt       string    `json:"alt"`
		Src       string    `json:"src"`
		Align     string    `json:"align"`
		Overlay   int       `json:"overlay"`
		Published bool      `json:"published"`
		Order     int       `json:"order"`
		CreatedAt time.Time `json:"created_at"`
	}

	EventRequest struct {
		Title       string `json:"title" validate:"required"`
		Category    string `json:"category" validate:"omitempty"`
		Date        string `json:"date" validate:"omitempty"` // RFC3339 or 2006-01-02
		Location    string `json:"location" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty,max=300"`
		CoverImage  string `json:"cover_image" validate:"required"`
		Published   bool   `json:"published"`
	}

	UpdateEventRequest struct {
		Title       *string `json:"title" validate:"omitempty,min=1"`
		Category    *string `json:"category"`
		Date        *string `json:"date"`
		Location    *string `json:"location"`
		Description *string `json:"description" validate:"omitempty,max=300"`
		CoverImage  *string `json:"cover_image"`
		Published   *bool   `json:"published"`
	}

	Event struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Category    string    `json:"category"`
		Date        time.Time `json:"date"`
		Location    string    `json:"location"`
		Description string    `json:"description"`
		CoverImage  string    `json:"cover_image"`
		Published   bool      `json:"published"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
