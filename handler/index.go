package handler

import (
	"context"
	"time"

	"napoli_backend/config"
	"napoli_backend/database"
	"napoli_backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Napoli Restaurant Backend is running",
	})
}

// TestDatabase reports backend and database health. It always answers 200:
// every internal error is rendered as a status string, never propagated.
func TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if database.DB != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		names, err := database.DB.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	if config.Config("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	if config.Config("DATABASE_NAME") != "" {
		response["database_name"] = "✅ Set"
	} else {
		response["database_name"] = "❌ Not Set"
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
