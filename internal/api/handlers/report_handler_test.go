package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct{}

func (f *fakeReportService) Generate(ctx context.Context, req domain.GenerateReportRequest) (domain.Report, error) {
	if req.Type == "memberships" {
		return domain.Report{}, domain.ErrUnknownReportType
	}
	return domain.Report{
		Title:   "Donations Report",
		To:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Headers: []string{"Date", "Donor"},
		Rows:    [][]string{{"2026-08-15", "Amina"}},
	}, nil
}

func (f *fakeReportService) RenderCSV(report domain.Report) ([]byte, error) {
	return []byte("Date,Donor\n2026-08-15,Amina\n"), nil
}

func (f *fakeReportService) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	return domain.DashboardStats{CharitiesTotal: 2}, nil
}

func newReportTestApp() *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{ErrorHandler: presenters.AppErrorHandler})
	handler := NewReportHandler(&fakeReportService{}, utils.Validate)
	app.Post("/api/reports/generate", handler.Generate)
	app.Get("/api/reports/dashboard", handler.Dashboard)
	return app
}

func TestGenerateReportCSVAttachment(t *testing.T) {
	app := newReportTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/generate",
		strings.NewReader(`{"type":"donations","format":"csv"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/csv", res.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="donations-report-2026-08-30.csv"`, res.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Date,Donor"))
}

func TestGenerateReportJSONEnvelope(t *testing.T) {
	app := newReportTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/generate",
		strings.NewReader(`{"type":"donations"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Donations Report", body["data"].(map[string]any)["title"])
}

func TestGenerateReportRejectsUnknownType(t *testing.T) {
	app := newReportTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/generate",
		strings.NewReader(`{"type":"memberships"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
