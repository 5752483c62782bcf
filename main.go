package main

import (
	"log"

	"reviewdash/config"
	"reviewdash/database"
	authRoutes "reviewdash/routers/authRoutes"
	companyRoutes "reviewdash/routers/companyRoutes"
	publicRoutes "reviewdash/routers/publicRoutes"
	reviewRoutes "reviewdash/routers/reviewRoutes"
	widgetRoutes "reviewdash/routers/widgetRoutes"
	"reviewdash/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	widgetRoutes.SetupWidgetRoutes(app)
	publicRoutes.SetupPublicRoutes(app)

	// Background review sync
	utils.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
