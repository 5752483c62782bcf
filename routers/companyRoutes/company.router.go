package companyRoutes

import (
	controller "reviewdash/controllers/company"
	"reviewdash/middleware"
	validator "reviewdash/validators/company"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App) {
	company := app.Group("/company")

	company.Get("/", middleware.JWTMiddleware, controller.CompanyProfile)
	company.Put("/", validator.UpdateCompany(), middleware.JWTMiddleware, middleware.RequireRole("OWNER", "ADMIN"), controller.UpdateCompany)
	company.Get("/locations", middleware.JWTMiddleware, controller.LocationList)
	company.Post("/locations", validator.AddLocation(), middleware.JWTMiddleware, middleware.RequireRole("OWNER", "ADMIN"), controller.AddLocation)
	company.Delete("/locations/:id", middleware.JWTMiddleware, middleware.RequireRole("OWNER", "ADMIN"), controller.DeleteLocation)
}
