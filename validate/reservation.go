package validate

import (
	"fmt"

	"napoli_backend/model"
	"napoli_backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation checks field constraints only. There is deliberately no
// overlap or capacity rule against existing reservations.
func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"detail": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		// Save input to context locals
		c.Locals("reservationInput", input)

		return c.Next()
	}
}
