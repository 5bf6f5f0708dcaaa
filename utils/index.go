package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse renders a failure in the API's {detail} shape.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	detail := message
	if err != nil {
		if detail != "" {
			detail = detail + ": " + err.Error()
		} else {
			detail = err.Error()
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"detail": detail,
	})
}

// ValidationErrorResponse renders field-level validation failures as a 422
// with one entry per violated field.
func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	fields := []fiber.Map{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range errs {
			fields = append(fields, fiber.Map{
				"field": fieldErr.Field(),
				"error": "failed on the '" + fieldErr.Tag() + "' rule",
			})
		}
	} else {
		fields = append(fields, fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": fields,
	})
}

// Truncate shortens s to at most n bytes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
