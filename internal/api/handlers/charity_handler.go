package handlers

import (
	"strconv"

	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/charity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CharityHandler interface {
		AdminList(c *fiber.Ctx) error
		CreateCharity(c *fiber.Ctx) error
		UpdateCharity(c *fiber.Ctx) error
		DeleteCharity(c *fiber.Ctx) error
		DonationLinkQR(c *fiber.Ctx) error
	}

	charityHandler struct {
		charityService charity.CharityService
		validator      *validator.Validate
	}
)

func NewCharityHandler(charityService charity.CharityService, validator *validator.Validate) CharityHandler {
	return &charityHandler{
		charityService: charityService,
		validator:      validator,
	}
}

func (h *charityHandler) AdminList(c *fiber.Ctx) error {
	query := domain.CharityListQuery{
		Q:      c.Query("q"),
		Status: c.Query("status"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 50),
	}

	charities, pagination, err := h.charityService.AdminList(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCharities, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      charities,
		"pagination": pagination,
	}, fiber.StatusOK, domain.MessageSuccessGetCharities)
}

func (h *charityHandler) CreateCharity(c *fiber.Ctx) error {
	req := new(domain.CharityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCharity, err)
	}

	result, err := h.charityService.CreateCharity(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCharity, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateCharity)
}

func (h *charityHandler) UpdateCharity(c *fiber.Ctx) error {
	req := new(domain.UpdateCharityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCharity, err)
	}

	result, err := h.charityService.UpdateCharity(c.Context(), c.Params("id"), *req)
	if err != nil {
		if err == domain.ErrCharityNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCharity, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCharity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateCharity, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateCharity)
}

func (h *charityHandler) DeleteCharity(c *fiber.Ctx) error {
	if err := h.charityService.DeleteCharity(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrCharityNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteCharity, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCharity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteCharity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCharity)
}

func (h *charityHandler) DonationLinkQR(c *fiber.Ctx) error {
	size, _ := strconv.Atoi(c.Query("size", "256"))

	png, err := h.charityService.DonationLinkQR(c.Context(), c.Params("id"), size)
	if err != nil {
		if err == domain.ErrCharityNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCharityQRCode, err)
		}
		if err == domain.ErrCharityNoDonationLink || err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCharityQRCode, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCharityQRCode, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
