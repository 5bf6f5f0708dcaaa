package router

import (
	"napoli_backend/handler"
	"napoli_backend/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/", handler.Root)
	app.Get("/test", handler.TestDatabase)

	api := app.Group("/api", logger.New())

	menu := api.Group("/menu")
	menu.Get("/", handler.GetMenu)
	menu.Post("/", validate.CreateMenuItem(), handler.AddMenuItem)

	reservations := api.Group("/reservations")
	reservations.Get("/", handler.GetReservations)
	reservations.Post("/", validate.CreateReservation(), handler.CreateReservation)
}
