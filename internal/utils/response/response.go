// Package response writes the console's JSON answers.
package response

import (
	apperrors "chargili/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationError answers 422 with the field messages and the submitted form.
func ValidationError(c *fiber.Ctx, errs apperrors.ValidationErrors, form interface{}) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  errs.Error(),
		"fields": errs,
		"form":   form,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// FromError picks status and message from err.
func FromError(c *fiber.Ctx, err error) error {
	return Error(c, apperrors.StatusOf(err), apperrors.MessageOf(err))
}

// ErrorHandler is the app-wide fallback for errors no handler answered.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return FromError(c, err)
}
