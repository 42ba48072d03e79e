package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateReport = "report generated successfully"
	MessageSuccessGetDashboard   = "dashboard statistics retrieved successfully"

	MessageFailedGenerateReport = "failed to generate report"
	MessageFailedGetDashboard   = "failed to retrieve dashboard statistics"

	ErrUnknownReportType = errors.New("unknown report type")
	ErrInvalidPeriod     = errors.New("invalid report period")
)

const (
	ReportDonations  = "donations"
	ReportVolunteers = "volunteers"
	ReportCharities  = "charities"
	ReportFinance    = "finance"

	ReportFormatJSON = "json"
	ReportFormatCSV  = "csv"
)

type (
	GenerateReportRequest struct {
		Type   string `json:"type" validate:"required,oneof=donations volunteers charities finance"`
		From   string `json:"from" validate:"omitempty"` // 2006-01-02, default: 30 days ago
		To     string `json:"to" validate:"omitempty"`   // 2006-01-02, default: today
		Format string `json:"format" validate:"omitempty,oneof=json csv"`
	}

	Report struct {
		Title       string     `json:"title"`
		Subtitle    string     `json:"subtitle"`
		From        time.Time  `json:"from"`
		To          time.Time  `json:"to"`
		Headers     []string   `json:"headers"`
		Rows        [][]string `json:"rows"`
		GeneratedAt time.Time  `json:"generated_at"`
	}

	DashboardStats struct {
		Payments        PaymentStats    `json:"payments"`
		Volunteers      VolunteerTotals `json:"volunteers"`
		CharitiesTotal  int64           `json:"charities_total"`
		CharitiesLive   int64           `json:"charities_published"`
		CharitiesDraft  int64           `json:"charities_draft"`
		EventsPublished int64           `json:"events_published"`
		SlidesPublished int64           `json:"slides_published"`
	}
)
