package volunteer

import (
	"context"
	"strings"
	"time"

	"charity-admin-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VolunteerRepository interface {
		List(ctx context.Context, q, status string) ([]*entities.Volunteer, error)
		GetVolunteerByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error)
		CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error
		UpdateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error
		DeleteVolunteer(ctx context.Context, id uuid.UUID) error
		CountByStatus(ctx context.Context, status string) (int64, error)
		Count(ctx context.Context) (int64, error)
		ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Volunteer, error)
	}

	volunteerRepository struct {
		db *gorm.DB
	}
)

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) List(ctx context.Context, q, status string) ([]*entities.Volunteer, error) {
	var volunteers []*entities.Volunteer

	query := r.db.WithContext(ctx).Model(&entities.Volunteer{})

	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern, pattern)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at DESC").Find(&volunteers).Error; err != nil {
		return nil, err
	}

	return volunteers, nil
}

func (r *volunteerRepository) GetVolunteerByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error) {
	var volunteer entities.Volunteer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&volunteer).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *volunteerRepository) CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepository) UpdateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error {
	return r.db.WithContext(ctx).Save(volunteer).Error
}

func (r *volunteerRepository) DeleteVolunteer(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Volunteer{}).Error
}

func (r *volunteerRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Volunteer{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *volunteerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Volunteer{}).Count(&count).Error
	return count, err
}

func (r *volunteerRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Volunteer, error) {
	var volunteers []*entities.Volunteer
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&volunteers).Error
	return volunteers, err
}
