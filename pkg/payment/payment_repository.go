package payment

import (
	"context"
	"strings"
	"time"

	"charity-admin-backend/entities"

	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		AdminList(ctx context.Context, q, status, method, currency string, page, limit int) ([]*entities.Payment, int64, error)
		SumAmount(ctx context.Context, status, currency string, from, to time.Time) (float64, error)
		CountByStatus(ctx context.Context, status string) (int64, error)
		Count(ctx context.Context) (int64, error)
		CountByMethod(ctx context.Context) (map[string]int64, error)
		SumByCurrency(ctx context.Context, status string) (map[string]float64, error)
		ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Payment, error)
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) AdminList(ctx context.Context, q, status, method, currency string, page, limit int) ([]*entities.Payment, int64, error) {
	var (
		payments []*entities.Payment
		count    int64
	)

	query := r.db.WithContext(ctx).Model(&entities.Payment{})

	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(reference) LIKE ?", pattern, pattern)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if method != "" && method != "all" {
		query = query.Where("method = ?", method)
	}
	if currency != "" && currency != "all" {
		query = query.Where("currency = ?", currency)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, count, nil
}

func (r *paymentRepository) SumAmount(ctx context.Context, status, currency string, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Where("status = ? AND currency = ? AND created_at >= ? AND created_at < ?", status, currency, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Payment{}).Count(&count).Error
	return count, err
}

func (r *paymentRepository) CountByMethod(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Method string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Select("method, COUNT(*) as count").
		Group("method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Method] = row.Count
	}
	return result, nil
}

func (r *paymentRepository) SumByCurrency(ctx context.Context, status string) (map[string]float64, error) {
	var rows []struct {
		Currency string
		Total    float64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Payment{}).
		Select("currency, COALESCE(SUM(amount), 0) as total").
		Where("status = ?", status).
		Group("currency").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(rows))
	for _, row := range rows {
		result[row.Currency] = row.Total
	}
	return result, nil
}

func (r *paymentRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Payment, error) {
	var payments []*entities.Payment
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
