package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPayments     = "payments retrieved successfully"
	MessageSuccessGetPaymentStats = "payment statistics retrieved successfully"

	MessageFailedGetPayments     = "failed to retrieve payments"
	MessageFailedGetPaymentStats = "failed to retrieve payment statistics"

	ErrPaymentNotFound = errors.New("payment not found")
)

type (
	PaymentListQuery struct {
		Q        string
		Status   string
		Method   string
		Currency string
		Page     int
		Limit    int
	}

	Payment struct {
		ID                string    `json:"id"`
		Name              string    `json:"name"`
		Email             string    `json:"email,omitempty"`
		Phone             string    `json:"phone,omitempty"`
		Method            string    `json:"method"`
		Currency          string    `json:"currency"`
		Amount            float64   `json:"amount"`
		Status            string    `json:"status"`
		Reference         string    `json:"reference"`
		ProviderReference string    `json:"provider_reference,omitempty"`
		Note              string    `json:"note,omitempty"`
		CreatedAt         time.Time `json:"created_at"`
	}

	PaymentStats struct {
		TodayTotalUSD float64            `json:"today_total_usd"`
		MTDTotalUSD   float64            `json:"mtd_total_usd"`
		Count         int64              `json:"count"`
		SuccessCount  int64              `json:"success_count"`
		SuccessRate   int                `json:"success_rate"` // percentage, 0..100
		ByMethod      map[string]int64   `json:"by_method"`
		ByCurrency    map[string]float64 `json:"by_currency"` // successful amounts per currency
	}
)
