package payment

import (
	"context"
	"testing"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"

	"github.com/stretchr/testify/assert"
)

type fakePaymentRepository struct {
	payments []*entities.Payment

	lastPage  int
	lastLimit int
}

func (f *fakePaymentRepository) AdminList(ctx context.Context, q, status, method, currency string, page, limit int) ([]*entities.Payment, int64, error) {
	f.lastPage = page
	f.lastLimit = limit
	return f.payments, int64(len(f.payments)), nil
}

func (f *fakePaymentRepository) SumAmount(ctx context.Context, status, currency string, from, to time.Time) (float64, error) {
	var total float64
	for _, p := range f.payments {
		if p.Status == status && p.Currency == currency {
			total += p.Amount
		}
	}
	return total, nil
}

func (f *fakePaymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, p := range f.payments {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakePaymentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}

func (f *fakePaymentRepository) CountByMethod(ctx context.Context) (map[string]int64, error) {
	result := map[string]int64{}
	for _, p := range f.payments {
		result[p.Method]++
	}
	return result, nil
}

func (f *fakePaymentRepository) SumByCurrency(ctx context.Context, status string) (map[string]float64, error) {
	result := map[string]float64{}
	for _, p := range f.payments {
		if p.Status == status {
			result[p.Currency] += p.Amount
		}
	}
	return result, nil
}

func (f *fakePaymentRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Payment, error) {
	return f.payments, nil
}

func TestAdminListDefaults(t *testing.T) {
	repo := &fakePaymentRepository{}
	service := NewPaymentService(repo)

	_, pagination, err := service.AdminList(context.Background(), domain.PaymentListQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.lastPage)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Equal(t, 1, pagination.Page)
}

func TestStats(t *testing.T) {
	repo := &fakePaymentRepository{
		payments: []*entities.Payment{
			{Name: "Amina", Method: "EVC", Currency: "USD", Amount: 50, Status: "success"},
			{Name: "Hassan", Method: "EVC", Currency: "USD", Amount: 25, Status: "success"},
			{Name: "Fartun", Method: "EDAHAB", Currency: "SOS", Amount: 120000, Status: "success"},
			{Name: "Yusuf", Method: "EVC", Currency: "USD", Amount: 10, Status: "failed"},
		},
	}
	service := NewPaymentService(repo)

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, float64(75), stats.TodayTotalUSD)
	assert.Equal(t, int64(4), stats.Count)
	assert.Equal(t, int64(3), stats.SuccessCount)
	assert.Equal(t, 75, stats.SuccessRate)
	assert.Equal(t, int64(3), stats.ByMethod["EVC"])
	assert.Equal(t, float64(120000), stats.ByCurrency["SOS"])
}

func TestStatsEmpty(t *testing.T) {
	service := NewPaymentService(&fakePaymentRepository{})

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.SuccessRate)
	assert.Equal(t, int64(0), stats.Count)
}
