package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id for the access log.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	})
}
