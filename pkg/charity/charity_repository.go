package charity

import (
	"context"
	"strings"
	"time"

	"charity-admin-backend/entities"

	"gorm.io/gorm"
)

type (
	CharityRepository interface {
		AdminList(ctx context.Context, q, status string, page, limit int) ([]*entities.Charity, int64, error)
		GetCharityByID(ctx context.Context, id string) (*entities.Charity, error)
		CreateCharity(ctx context.Context, charity *entities.Charity) error
		UpdateCharity(ctx context.Context, charity *entities.Charity) error
		DeleteCharity(ctx context.Context, id string) error
		CountByStatus(ctx context.Context, status string) (int64, error)
		Count(ctx context.Context) (int64, error)
		ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Charity, error)
	}

	charityRepository struct {
		db *gorm.DB
	}
)

func NewCharityRepository(db *gorm.DB) CharityRepository {
	return &charityRepository{db: db}
}

func (r *charityRepository) AdminList(ctx context.Context, q, status string, page, limit int) ([]*entities.Charity, int64, error) {
	var (
		charities []*entities.Charity
		count     int64
	)

	query := r.db.WithContext(ctx).Model(&entities.Charity{})

	// Search matches title or location only, case-insensitive.
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&charities).Error; err != nil {
		return nil, 0, err
	}

	return charities, count, nil
}

func (r *charityRepository) GetCharityByID(ctx context.Context, id string) (*entities.Charity, error) {
	var charity entities.Charity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&charity).Error; err != nil {
		return nil, err
	}
	return &charity, nil
}

func (r *charityRepository) CreateCharity(ctx context.Context, charity *entities.Charity) error {
	return r.db.WithContext(ctx).Create(charity).Error
}

func (r *charityRepository) UpdateCharity(ctx context.Context, charity *entities.Charity) error {
	return r.db.WithContext(ctx).Save(charity).Error
}

func (r *charityRepository) DeleteCharity(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Charity{}).Error
}

func (r *charityRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Charity{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *charityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Charity{}).Count(&count).Error
	return count, err
}

func (r *charityRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Charity, error) {
	var charities []*entities.Charity
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&charities).Error
	return charities, err
}
