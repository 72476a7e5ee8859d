package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tair/property-browser/internal/web/views"
)

// ErrorHandler answers JSON callers with JSON and browsers with the error page
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again."

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if wantsJSON(c) {
		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"statusCode": code,
			"path":       c.Path(),
			"method":     c.Method(),
			"requestId":  c.GetRespHeader(fiber.HeaderXRequestID),
		})
	}

	return c.Status(code).Render("error", views.Page{
		Lang:       "en",
		Title:      "Error",
		StatusCode: code,
		Message:    message,
	})
}
