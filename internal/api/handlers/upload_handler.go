package handlers

import (
	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		UploadFile(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
		Variant(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
	}
)

func NewUploadHandler(uploadService upload.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

func (h *uploadHandler) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMissingFile, domain.ErrFileNotProvided)
	}

	result, err := h.uploadService.UploadFile(c.Context(), file)
	if err != nil {
		if err == domain.ErrFileTypeNotAllowed {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadFile, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessUploadFile)
}

func (h *uploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMissingFile, domain.ErrFileNotProvided)
	}

	result, err := h.uploadService.UploadImage(c.Context(), file)
	if err != nil {
		if err == domain.ErrFileTypeNotAllowed {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadFile, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessUploadFile)
}

func (h *uploadHandler) Variant(c *fiber.Ctx) error {
	query := domain.VariantQuery{
		Filename: c.Params("filename"),
		Width:    c.QueryInt("w", 0),
		Height:   c.QueryInt("h", 0),
	}

	data, contentType, err := h.uploadService.Variant(c.Context(), query)
	if err != nil {
		if err == domain.ErrVariantNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetVariant, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetVariant, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
