package main

import (
	"log"

	"napoli_backend/config"
	"napoli_backend/database"
	"napoli_backend/middleware"
	"napoli_backend/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "Napoli Restaurant API",
	})

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	database.ConnectDB()
	database.SeedMenu()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8000")
	log.Fatal(app.Listen(":" + port))
}
