package homepage

import (
	"context"

	"charity-admin-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HomepageRepository interface {
		ListSlides(ctx context.Context) ([]*entities.Slide, error)
		GetSlideByID(ctx context.Context, id uuid.UUID) (*entities.Slide, error)
		CreateSlide(ctx context.Context, slide *entities.Slide) error
		UpdateSlide(ctx context.Context, slide *entities.Slide) error
		DeleteSlide(ctx context.Context, id uuid.UUID) error
		MaxSortOrder(ctx context.Context) (int, error)
		SwapSlideOrder(ctx context.Context, a, b *entities.Slide) error
		CountSlides(ctx context.Context, publishedOnly bool) (int64, error)

		ListEvents(ctx context.Context) ([]*entities.Event, error)
		GetEventByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
		CreateEvent(ctx context.Context, event *entities.Event) error
		UpdateEvent(ctx context.Context, event *entities.Event) error
		DeleteEvent(ctx context.Context, id uuid.UUID) error
		CountEvents(ctx context.Context) (int64, error)
	}

	homepageRepository struct {
		db *gorm.DB
	}
)

func NewHomepageRepository(db *gorm.DB) HomepageRepository {
	return &homepageRepository{db: db}
}

func (r *homepageRepository) ListSlides(ctx context.Context) ([]*entities.Slide, error) {
	var slides []*entities.Slide
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&slides).Error
	return slides, err
}

func (r *homepageRepository) GetSlideByID(ctx context.Context, id uuid.UUID) (*entities.Slide, error) {
	var slide entities.Slide
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slide).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

func (r *homepageRepository) CreateSlide(ctx context.Context, slide *entities.Slide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

func (r *homepageRepository) UpdateSlide(ctx context.Context, slide *entities.Slide) error {
	return r.db.WithContext(ctx).Save(slide).Error
}

func (r *homepageRepository) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Slide{}).Error
}

func (r *homepageRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&entities.Slide{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *homepageRepository) SwapSlideOrder(ctx context.Context, a, b *entities.Slide) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Slide{}).Where("id = ?", a.ID).Update("sort_order", b.SortOrder).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Slide{}).Where("id = ?", b.ID).Update("sort_order", a.SortOrder).Error
	})
}

func (r *homepageRepository) CountSlides(ctx context.Context, publishedOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Slide{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *homepageRepository) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).Order("date DESC").Find(&events).Error
	return events, err
}

func (r *homepageRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var event entities.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *homepageRepository) CreateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *homepageRepository) UpdateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *homepageRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Event{}).Error
}

func (r *homepageRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Event{}).Count(&count).Error
	return count, err
}
