package report

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/entities"

	"github.com/stretchr/testify/assert"
)

type fakePaymentRepository struct {
	payments []*entities.Payment
}

func (f *fakePaymentRepository) AdminList(ctx context.Context, q, status, method, currency string, page, limit int) ([]*entities.Payment, int64, error) {
	return f.payments, int64(len(f.payments)), nil
}

func (f *fakePaymentRepository) SumAmount(ctx context.Context, status, currency string, from, to time.Time) (float64, error) {
	return 0, nil
}

func (f *fakePaymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func (f *fakePaymentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}

func (f *fakePaymentRepository) CountByMethod(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakePaymentRepository) SumByCurrency(ctx context.Context, status string) (map[string]float64, error) {
	return nil, nil
}

func (f *fakePaymentRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*entities.Payment, error) {
	return f.payments, nil
}

func testPayments() []*entities.Payment {
	return []*entities.Payment{
		{
			Name:      `Amina "Deeqa" Hussein`,
			Method:    "EVC",
			Currency:  "USD",
			Amount:    50,
			Status:    "success",
			Reference: "PAY-001",
		},
		{
			Name:      "Hassan, Abdi",
			Method:    "EDAHAB",
			Currency:  "SOS",
			Amount:    120000,
			Status:    "failed",
			Reference: "PAY-002",
		},
	}
}

func TestGenerateDonationsReport(t *testing.T) {
	service := NewReportService(nil, &fakePaymentRepository{payments: testPayments()}, nil, nil, nil, nil)

	report, err := service.Generate(context.Background(), domain.GenerateReportRequest{
		Type: domain.ReportDonations,
		From: "2026-08-01",
		To:   "2026-08-30",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Donations Report", report.Title)
	assert.Equal(t, []string{"Date", "Donor", "Method", "Currency", "Amount", "Status", "Reference"}, report.Headers)
	assert.Len(t, report.Rows, 2)
	assert.Equal(t, "50.00", report.Rows[0][4])
}

func TestGenerateFinanceReport(t *testing.T) {
	service := NewReportService(nil, &fakePaymentRepository{payments: testPayments()}, nil, nil, nil, nil)

	report, err := service.Generate(context.Background(), domain.GenerateReportRequest{
		Type: domain.ReportFinance,
	})

	assert.NoError(t, err)
	assert.Contains(t, report.Rows, []string{"Transactions", "2"})
	assert.Contains(t, report.Rows, []string{"Successful", "1"})
	assert.Contains(t, report.Rows, []string{"Total USD", "50.00"})
}

func TestGenerateRejectsInvalidPeriod(t *testing.T) {
	service := NewReportService(nil, &fakePaymentRepository{}, nil, nil, nil, nil)

	_, err := service.Generate(context.Background(), domain.GenerateReportRequest{
		Type: domain.ReportDonations,
		From: "2026-08-30",
		To:   "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = service.Generate(context.Background(), domain.GenerateReportRequest{
		Type: domain.ReportDonations,
		From: "not-a-date",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestGenerateUnknownType(t *testing.T) {
	service := NewReportService(nil, &fakePaymentRepository{}, nil, nil, nil, nil)

	_, err := service.Generate(context.Background(), domain.GenerateReportRequest{
		Type: "memberships",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownReportType)
}

func TestRenderCSVEscapesFields(t *testing.T) {
	service := NewReportService(nil, &fakePaymentRepository{payments: testPayments()}, nil, nil, nil, nil)

	report, err := service.Generate(context.Background(), domain.GenerateReportRequest{
		Type: domain.ReportDonations,
	})
	assert.NoError(t, err)

	data, err := service.RenderCSV(report)
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, report.Headers, records[0])
	// quotes and commas in donor names survive the round trip
	assert.Equal(t, `Amina "Deeqa" Hussein`, records[1][1])
	assert.Equal(t, "Hassan, Abdi", records[2][1])
}
