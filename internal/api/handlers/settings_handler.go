package handlers

import (
	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/settings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettingsHandler interface {
		GetAccount(c *fiber.Ctx) error
		UpdateAccount(c *fiber.Ctx) error
		GetNotifications(c *fiber.Ctx) error
		UpdateNotifications(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService settings.SettingsService
		validator       *validator.Validate
	}
)

func NewSettingsHandler(settingsService settings.SettingsService, validator *validator.Validate) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *settingsHandler) GetAccount(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	account, err := h.settingsService.GetAccount(c.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAccount, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAccount, err)
	}

	return presenters.SuccessResponse(c, account, fiber.StatusOK, domain.MessageSuccessGetAccount)
}

func (h *settingsHandler) UpdateAccount(c *fiber.Ctx) error {
	req := new(domain.UpdateAccountRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAccount, err)
	}

	userID, _ := c.Locals("user_id").(string)

	account, err := h.settingsService.UpdateAccount(c.Context(), userID, *req)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateAccount, err)
		case domain.ErrWrongCurrentPassword:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAccount, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateAccount, err)
	}

	return presenters.SuccessResponse(c, account, fiber.StatusOK, domain.MessageSuccessUpdateAccount)
}

func (h *settingsHandler) GetNotifications(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	prefs, err := h.settingsService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, prefs, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *settingsHandler) UpdateNotifications(c *fiber.Ctx) error {
	req := new(domain.NotificationPreferences)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	userID, _ := c.Locals("user_id").(string)

	prefs, err := h.settingsService.UpdateNotifications(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateNotifications, err)
	}

	return presenters.SuccessResponse(c, prefs, fiber.StatusOK, domain.MessageSuccessUpdateNotifications)
}
