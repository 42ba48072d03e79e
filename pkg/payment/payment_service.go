package payment

import (
	"context"
	"math"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"
)

type (
	PaymentService interface {
		AdminList(ctx context.Context, query domain.PaymentListQuery) ([]domain.Payment, domain.Pagination, error)
		Stats(ctx context.Context) (domain.PaymentStats, error)
	}

	paymentService struct {
		paymentRepository PaymentRepository
	}
)

const statusSuccess = "success"

func NewPaymentService(paymentRepository PaymentRepository) PaymentService {
	return &paymentService{paymentRepository: paymentRepository}
}

func toDomain(payment *entities.Payment) domain.Payment {
	return domain.Payment{
		ID:                payment.ID.String(),
		Name:              payment.Name,
		Email:             payment.Email,
		Phone:             payment.Phone,
		Method:            payment.Method,
		Currency:          payment.Currency,
		Amount:            payment.Amount,
		Status:            payment.Status,
		Reference:         payment.Reference,
		ProviderReference: payment.ProviderReference,
		Note:              payment.Note,
		CreatedAt:         payment.CreatedAt,
	}
}

func (s *paymentService) AdminList(ctx context.Context, query domain.PaymentListQuery) ([]domain.Payment, domain.Pagination, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 50
	}

	payments, total, err := s.paymentRepository.AdminList(ctx, query.Q, query.Status, query.Method, query.Currency, query.Page, query.Limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	result := make([]domain.Payment, 0, len(payments))
	for _, payment := range payments {
		result = append(result, toDomain(payment))
	}

	return result, domain.NewPagination(query.Page, query.Limit, total), nil
}

func (s *paymentService) Stats(ctx context.Context) (domain.PaymentStats, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)

	todayTotal, err := s.paymentRepository.SumAmount(ctx, statusSuccess, "USD", todayStart, tomorrow)
	if err != nil {
		return domain.PaymentStats{}, err
	}

	mtdTotal, err := s.paymentRepository.SumAmount(ctx, statusSuccess, "USD", monthStart, tomorrow)
	if err != nil {
		return domain.PaymentStats{}, err
	}

	count, err := s.paymentRepository.Count(ctx)
	if err != nil {
		return domain.PaymentStats{}, err
	}

	successCount, err := s.paymentRepository.CountByStatus(ctx, statusSuccess)
	if err != nil {
		return domain.PaymentStats{}, err
	}

	byMethod, err := s.paymentRepository.CountByMethod(ctx)
	if err != nil {
		return domain.PaymentStats{}, err
	}

	byCurrency, err := s.paymentRepository.SumByCurrency(ctx, statusSuccess)
	if err != nil {
		return domain.PaymentStats{}, err
	}

	successRate := 0
	if count > 0 {
		successRate = int(math.Round(float64(successCount) / float64(count) * 100))
	}

	return domain.PaymentStats{
		TodayTotalUSD: todayTotal,
		MTDTotalUSD:   mtdTotal,
		Count:         count,
		SuccessCount:  successCount,
		SuccessRate:   successRate,
		ByMethod:      byMethod,
		ByCurrency:    byCurrency,
	}, nil
}
