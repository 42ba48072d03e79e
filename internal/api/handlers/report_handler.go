package handlers

import (
	"fmt"

	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/report"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		Generate(c *fiber.Ctx) error
		Dashboard(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) Generate(c *fiber.Ctx) error {
	req := new(domain.GenerateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateReport, err)
	}

	result, err := h.reportService.Generate(c.Context(), *req)
	if err != nil {
		if err == domain.ErrUnknownReportType || err == domain.ErrInvalidPeriod {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateReport, err)
	}

	if req.Format == domain.ReportFormatCSV {
		data, err := h.reportService.RenderCSV(result)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateReport, err)
		}
		filename := fmt.Sprintf("%s-report-%s.csv", req.Type, result.To.Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Send(data)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGenerateReport)
}

func (h *reportHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.reportService.Dashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
