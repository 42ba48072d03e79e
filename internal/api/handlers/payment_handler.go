package handlers

import (
	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/payment"

	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		AdminList(c *fiber.Ctx) error
		Stats(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
	}
)

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

func (h *paymentHandler) AdminList(c *fiber.Ctx) error {
	query := domain.PaymentListQuery{
		Q:        c.Query("q"),
		Status:   c.Query("status"),
		Method:   c.Query("method"),
		Currency: c.Query("currency"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 50),
	}

	payments, pagination, err := h.paymentService.AdminList(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPayments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      payments,
		"pagination": pagination,
	}, fiber.StatusOK, domain.MessageSuccessGetPayments)
}

func (h *paymentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.paymentService.Stats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPaymentStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetPaymentStats)
}
