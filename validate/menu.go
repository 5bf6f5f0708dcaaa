package validate

import (
	"fmt"

	"napoli_backend/model"
	"napoli_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"detail": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		// Save input to context locals
		c.Locals("menuItemInput", input)

		return c.Next()
	}
}
