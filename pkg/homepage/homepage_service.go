package homepage

import (
	"context"
	"errors"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HomepageService interface {
		ListSlides(ctx context.Context) ([]domain.Slide, error)
		CreateSlide(ctx context.Context, req domain.SlideRequest) (domain.Slide, error)
		UpdateSlide(ctx context.Context, id string, req domain.UpdateSlideRequest) (domain.Slide, error)
		DeleteSlide(ctx context.Context, id string) error
		MoveSlide(ctx context.Context, id, direction string) ([]domain.Slide, error)

		ListEvents(ctx context.Context) ([]domain.Event, error)
		CreateEvent(ctx context.Context, req domain.EventRequest) (domain.Event, error)
		UpdateEvent(ctx context.Context, id string, req domain.UpdateEventRequest) (domain.Event, error)
		DeleteEvent(ctx context.Context, id string) error
	}

	homepageService struct {
		homepageRepository HomepageRepository
	}
)

func NewHomepageService(homepageRepository HomepageRepository) HomepageService {
	return &homepageService{homepageRepository: homepageRepository}
}

func slideToDomain(slide *entities.Slide) domain.Slide {
	return domain.Slide{
		ID:        slide.ID.String(),
		Title:     slide.Title,
		Subtitle:  slide.Subtitle,
		Alt:       slide.Alt,
		Src:       slide.Src,
		Align:     slide.Align,
		Overlay:   slide.Overlay,
		Published: slide.Published,
		Order:     slide.SortOrder,
		CreatedAt: slide.CreatedAt,
	}
}

func eventToDomain(event *entities.Event) domain.Event {
	return domain.Event{
		ID:          event.ID.String(),
		Title:       event.Title,
		Category:    event.Category,
		Date:        event.Date,
		Location:    event.Location,
		Description: event.Description,
		CoverImage:  event.CoverImage,
		Published:   event.Published,
		CreatedAt:   event.CreatedAt,
	}
}

func (s *homepageService) ListSlides(ctx context.Context) ([]domain.Slide, error) {
	slides, err := s.homepageRepository.ListSlides(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Slide, 0, len(slides))
	for _, slide := range slides {
		result = append(result, slideToDomain(slide))
	}
	return result, nil
}

func (s *homepageService) CreateSlide(ctx context.Context, req domain.SlideRequest) (domain.Slide, error) {
	maxOrder, err := s.homepageRepository.MaxSortOrder(ctx)
	if err != nil {
		return domain.Slide{}, err
	}

	align := req.Align
	if align == "" {
		align = "left"
	}
	overlay := req.Overlay
	if overlay == 0 {
		overlay = domain.DefaultOverlay
	}

	slide := &entities.Slide{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Alt:       req.Alt,
		Src:       req.Src,
		Align:     align,
		Overlay:   overlay,
		Published: req.Published,
		SortOrder: maxOrder + 1,
	}

	if err := s.homepageRepository.CreateSlide(ctx, slide); err != nil {
		return domain.Slide{}, err
	}

	return slideToDomain(slide), nil
}

func (s *homepageService) UpdateSlide(ctx context.Context, id string, req domain.UpdateSlideRequest) (domain.Slide, error) {
	slideID, err := uuid.Parse(id)
	if err != nil {
		return domain.Slide{}, domain.ErrParseUUID
	}

	slide, err := s.homepageRepository.GetSlideByID(ctx, slideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Slide{}, domain.ErrSlideNotFound
		}
		return domain.Slide{}, err
	}

	if req.Title != nil {
		slide.Title = *req.Title
	}
	if req.Subtitle != nil {
		slide.Subtitle = *req.Subtitle
	}
	if req.Alt != nil {
		slide.Alt = *req.Alt
	}
	if req.Src != nil {
		slide.Src = *req.Src
	}
	if req.Align != nil {
		slide.Align = *req.Align
	}
	if req.Overlay != nil {
		slide.Overlay = *req.Overlay
	}
	if req.Published != nil {
		slide.Published = *req.Published
	}

	if err := s.homepageRepository.UpdateSlide(ctx, slide); err != nil {
		return domain.Slide{}, err
	}

	return slideToDomain(slide), nil
}

func (s *homepageService) DeleteSlide(ctx context.Context, id string) error {
	slideID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.homepageRepository.GetSlideByID(ctx, slideID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSlideNotFound
		}
		return err
	}

	return s.homepageRepository.DeleteSlide(ctx, slideID)
}

func (s *homepageService) MoveSlide(ctx context.Context, id, direction string) ([]domain.Slide, error) {
	if direction != domain.MoveUp && direction != domain.MoveDown {
		return nil, domain.ErrInvalidMoveDirection
	}

	slideID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	slides, err := s.homepageRepository.ListSlides(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, slide := range slides {
		if slide.ID == slideID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrSlideNotFound
	}

	neighbor := idx - 1
	if direction == domain.MoveDown {
		neighbor = idx + 1
	}

	// at the boundary there is nothing to swap with
	if neighbor >= 0 && neighbor < len(slides) {
		if err := s.homepageRepository.SwapSlideOrder(ctx, slides[idx], slides[neighbor]); err != nil {
			return nil, err
		}
		slides[idx].SortOrder, slides[neighbor].SortOrder = slides[neighbor].SortOrder, slides[idx].SortOrder
		slides[idx], slides[neighbor] = slides[neighbor], slides[idx]
	}

	result := make([]domain.Slide, 0, len(slides))
	for _, slide := range slides {
		result = append(result, slideToDomain(slide))
	}
	return result, nil
}

func (s *homepageService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.homepageRepository.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Event, 0, len(events))
	for _, event := range events {
		result = append(result, eventToDomain(event))
	}
	return result, nil
}

func parseEventDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (s *homepageService) CreateEvent(ctx context.Context, req domain.EventRequest) (domain.Event, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return domain.Event{}, err
	}

	event := &entities.Event{
		Title:       req.Title,
		Category:    req.Category,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Published:   req.Published,
	}

	if err := s.homepageRepository.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}

	return eventToDomain(event), nil
}

func (s *homepageService) UpdateEvent(ctx context.Context, id string, req domain.UpdateEventRequest) (domain.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return domain.Event{}, domain.ErrParseUUID
	}

	event, err := s.homepageRepository.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return domain.Event{}, err
		}
		event.Date = date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.CoverImage != nil {
		event.CoverImage = *req.CoverImage
	}
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := s.homepageRepository.UpdateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}

	return eventToDomain(event), nil
}

func (s *homepageService) DeleteEvent(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.homepageRepository.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}

	return s.homepageRepository.DeleteEvent(ctx, eventID)
}
