package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"charity-admin-backend/domain"
	"charity-admin-backend/pkg/charity"
	"charity-admin-backend/pkg/homepage"
	"charity-admin-backend/pkg/payment"
	"charity-admin-backend/pkg/volunteer"
)

type (
	ReportService interface {
		Generate(ctx context.Context, req domain.GenerateReportRequest) (domain.Report, error)
		RenderCSV(report domain.Report) ([]byte, error)
		Dashboard(ctx context.Context) (domain.DashboardStats, error)
	}

	reportService struct {
		charityRepository   charity.CharityRepository
		paymentRepository   payment.PaymentRepository
		volunteerRepository volunteer.VolunteerRepository
		homepageRepository  homepage.HomepageRepository
		paymentService      payment.PaymentService
		volunteerService    volunteer.VolunteerService
	}
)

const dateLayout = "2006-01-02"

func NewReportService(
	charityRepository charity.CharityRepository,
	paymentRepository payment.PaymentRepository,
	volunteerRepository volunteer.VolunteerRepository,
	homepageRepository homepage.HomepageRepository,
	paymentService payment.PaymentService,
	volunteerService volunteer.VolunteerService,
) ReportService {
	return &reportService{
		charityRepository:   charityRepository,
		paymentRepository:   paymentRepository,
		volunteerRepository: volunteerRepository,
		homepageRepository:  homepageRepository,
		paymentService:      paymentService,
		volunteerService:    volunteerService,
	}
}

func parsePeriod(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := to.AddDate(0, 0, -30)

	var err error
	if fromRaw != "" {
		from, err = time.Parse(dateLayout, fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
		}
	}
	if toRaw != "" {
		to, err = time.Parse(dateLayout, toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
	}

	return from, to, nil
}

func (s *reportService) Generate(ctx context.Context, req domain.GenerateReportRequest) (domain.Report, error) {
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return domain.Report{}, err
	}
	// the upper bound is inclusive
	cutoff := to.AddDate(0, 0, 1)

	report := domain.Report{
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
	}
	report.Subtitle = fmt.Sprintf("%s to %s", from.Format(dateLayout), to.Format(dateLayout))

	switch req.Type {
	case domain.ReportDonations:
		report.Title = "Donations Report"
		report.Headers = []string{"Date", "Donor", "Method", "Currency", "Amount", "Status", "Reference"}
		payments, err := s.paymentRepository.ListCreatedBetween(ctx, from, cutoff)
		if err != nil {
			return domain.Report{}, err
		}
		for _, p := range payments {
			report.Rows = append(report.Rows, []string{
				p.CreatedAt.Format(dateLayout),
				p.Name,
				p.Method,
				p.Currency,
				formatAmount(p.Amount),
				p.Status,
				p.Reference,
			})
		}

	case domain.ReportVolunteers:
		report.Title = "Volunteers Report"
		report.Headers = []string{"Date", "Full Name", "Email", "Phone", "City", "Interests", "Status"}
		volunteers, err := s.volunteerRepository.ListCreatedBetween(ctx, from, cutoff)
		if err != nil {
			return domain.Report{}, err
		}
		for _, v := range volunteers {
			report.Rows = append(report.Rows, []string{
				v.CreatedAt.Format(dateLayout),
				v.FullName,
				v.Email,
				v.Phone,
				v.City,
				strings.Join(v.Interests, "; "),
				v.Status,
			})
		}

	case domain.ReportCharities:
		report.Title = "Charities Report"
		report.Headers = []string{"Created", "Title", "Category", "Location", "Goal", "Raised", "Progress", "Status"}
		charities, err := s.charityRepository.ListCreatedBetween(ctx, from, cutoff)
		if err != nil {
			return domain.Report{}, err
		}
		for _, c := range charities {
			report.Rows = append(report.Rows, []string{
				c.CreatedAt.Format(dateLayout),
				c.Title,
				c.Category,
				c.Location,
				formatAmount(c.Goal),
				formatAmount(c.Raised),
				strconv.Itoa(charity.Progress(c.Raised, c.Goal)) + "%",
				c.Status,
			})
		}

	case domain.ReportFinance:
		report.Title = "Finance Report"
		report.Headers = []string{"Metric", "Value"}
		payments, err := s.paymentRepository.ListCreatedBetween(ctx, from, cutoff)
		if err != nil {
			return domain.Report{}, err
		}
		totals := map[string]float64{}
		var successCount, totalCount int64
		for _, p := range payments {
			totalCount++
			if p.Status == "success" {
				successCount++
				totals[p.Currency] += p.Amount
			}
		}
		report.Rows = append(report.Rows, []string{"Transactions", strconv.FormatInt(totalCount, 10)})
		report.Rows = append(report.Rows, []string{"Successful", strconv.FormatInt(successCount, 10)})
		for _, currency := range []string{"USD", "SOS"} {
			if total, ok := totals[currency]; ok {
				report.Rows = append(report.Rows, []string{"Total " + currency, formatAmount(total)})
			}
		}

	default:
		return domain.Report{}, domain.ErrUnknownReportType
	}

	return report, nil
}

func (s *reportService) RenderCSV(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(report.Headers); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *reportService) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	paymentStats, err := s.paymentService.Stats(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	volunteerTotals, err := s.volunteerService.Totals(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	charitiesTotal, err := s.charityRepository.Count(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	charitiesLive, err := s.charityRepository.CountByStatus(ctx, "Published")
	if err != nil {
		return domain.DashboardStats{}, err
	}
	charitiesDraft, err := s.charityRepository.CountByStatus(ctx, "Draft")
	if err != nil {
		return domain.DashboardStats{}, err
	}

	slidesPublished, err := s.homepageRepository.CountSlides(ctx, true)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	eventsPublished, err := s.homepageRepository.CountEvents(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	return domain.DashboardStats{
		Payments:        paymentStats,
		Volunteers:      volunteerTotals,
		CharitiesTotal:  charitiesTotal,
		CharitiesLive:   charitiesLive,
		CharitiesDraft:  charitiesDraft,
		EventsPublished: eventsPublished,
		SlidesPublished: slidesPublished,
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
