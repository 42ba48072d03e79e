package handlers

import (
	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/homepage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HomepageHandler interface {
		ListSlides(c *fiber.Ctx) error
		CreateSlide(c *fiber.Ctx) error
		UpdateSlide(c *fiber.Ctx) error
		DeleteSlide(c *fiber.Ctx) error
		MoveSlide(c *fiber.Ctx) error
		ListEvents(c *fiber.Ctx) error
		CreateEvent(c *fiber.Ctx) error
		UpdateEvent(c *fiber.Ctx) error
		DeleteEvent(c *fiber.Ctx) error
	}

	homepageHandler struct {
		homepageService homepage.HomepageService
		validator       *validator.Validate
	}
)

func NewHomepageHandler(homepageService homepage.HomepageService, validator *validator.Validate) HomepageHandler {
	return &homepageHandler{
		homepageService: homepageService,
		validator:       validator,
	}
}

func (h *homepageHandler) ListSlides(c *fiber.Ctx) error {
	slides, err := h.homepageService.ListSlides(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSlides, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": slides}, fiber.StatusOK, domain.MessageSuccessGetSlides)
}

func (h *homepageHandler) CreateSlide(c *fiber.Ctx) error {
	req := new(domain.SlideRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSlide, err)
	}

	result, err := h.homepageService.CreateSlide(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateSlide, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateSlide)
}

func (h *homepageHandler) UpdateSlide(c *fiber.Ctx) error {
	req := new(domain.UpdateSlideRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSlide, err)
	}

	result, err := h.homepageService.UpdateSlide(c.Context(), c.Params("id"), *req)
	if err != nil {
		if err == domain.ErrSlideNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateSlide, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSlide, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateSlide, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateSlide)
}

func (h *homepageHandler) DeleteSlide(c *fiber.Ctx) error {
	if err := h.homepageService.DeleteSlide(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrSlideNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteSlide, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSlide, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteSlide, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSlide)
}

func (h *homepageHandler) MoveSlide(c *fiber.Ctx) error {
	slides, err := h.homepageService.MoveSlide(c.Context(), c.Params("id"), c.Query("dir"))
	if err != nil {
		if err == domain.ErrSlideNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMoveSlide, err)
		}
		if err == domain.ErrParseUUID || err == domain.ErrInvalidMoveDirection {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveSlide, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMoveSlide, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": slides}, fiber.StatusOK, domain.MessageSuccessMoveSlide)
}

func (h *homepageHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.homepageService.ListEvents(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": events}, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *homepageHandler) CreateEvent(c *fiber.Ctx) error {
	req := new(domain.EventRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	result, err := h.homepageService.CreateEvent(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateEvent)
}

func (h *homepageHandler) UpdateEvent(c *fiber.Ctx) error {
	req := new(domain.UpdateEventRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEvent, err)
	}

	result, err := h.homepageService.UpdateEvent(c.Context(), c.Params("id"), *req)
	if err != nil {
		if err == domain.ErrEventNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateEvent, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateEvent, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessUpdateEvent)
}

func (h *homepageHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.homepageService.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrEventNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEvent, err)
		}
		if err == domain.ErrParseUUID {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteEvent, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEvent)
}
