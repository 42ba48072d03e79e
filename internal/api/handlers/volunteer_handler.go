package handlers

import (
	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/volunteer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VolunteerHandler interface {
		List(c *fiber.Ctx) error
		Apply(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		SendEmail(c *fiber.Ctx) error
	}

	volunteerHandler struct {
		volunteerService volunteer.VolunteerService
		validator        *validator.Validate
	}
)

func NewVolunteerHandler(volunteerService volunteer.VolunteerService, validator *validator.Validate) VolunteerHandler {
	return &volunteerHandler{
		volunteerService: volunteerService,
		validator:        validator,
	}
}

func (h *volunteerHandler) List(c *fiber.Ctx) error {
	query := domain.VolunteerListQuery{
		Q:      c.Query("q"),
		Status: c.Query("status"),
	}

	volunteers, totals, err := h.volunteerService.List(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVolunteers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":  volunteers,
		"totals": totals,
	}, fiber.StatusOK, domain.MessageSuccessGetVolunteers)
}

func (h *volunteerHandler) Apply(c *fiber.Ctx) error {
	req := new(domain.VolunteerApplicationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("cv_file"); err == nil {
		req.CVFile = file
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyVolunteer, err)
	}

	result, err := h.volunteerService.Apply(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedApplyVolunteer, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessApplyVolunteer)
}

func (h *volunteerHandler) Delete(c *fiber.Ctx) error {
	if err := h.volunteerService.Delete(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrVolunteerNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteVolunteer, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteVolunteer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteVolunteer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteVolunteer)
}

func (h *volunteerHandler) UpdateStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateVolunteerStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateVolunteerStatus, err)
	}

	result, err := h.volunteerService.UpdateStatus(c.Context(), c.Params("id"), *req)
	if err != nil {
		if err == domain.ErrVolunteerNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateVolunteerStatus, err)
		}
		if err == domain.ErrParseUUID || err == domain.ErrInvalidVolunteerStatus {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateVolunteerStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateVolunteerStatus, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateVolunteerStatus)
}

func (h *volunteerHandler) SendEmail(c *fiber.Ctx) error {
	req := new(domain.SendVolunteerEmailRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendVolunteerEmail, err)
	}

	if err := h.volunteerService.SendEmail(c.Context(), *req); err != nil {
		if err == domain.ErrVolunteerNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSendVolunteerEmail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendVolunteerEmail, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendVolunteerEmail)
}
