package presenters

import (
	"charity-admin-backend/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// AppErrorHandler keeps unhandled errors in the same envelope, with a
// friendly message when the body limit rejects an oversized upload.
func AppErrorHandler(c *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		if fiberErr.Code == fiber.StatusRequestEntityTooLarge {
			return ErrorResponse(c, fiber.StatusRequestEntityTooLarge, domain.MessageFailedUploadTooLarge, err)
		}
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message, err)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, "internal server error", err)
}
