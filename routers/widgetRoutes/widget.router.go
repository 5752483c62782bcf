package widgetRoutes

import (
	controller "reviewdash/controllers/widget"
	"reviewdash/middleware"
	validator "reviewdash/validators/widget"

	"github.com/gofiber/fiber/v2"
)

func SetupWidgetRoutes(app *fiber.App) {
	widget := app.Group("/widgets")

	widget.Get("/", validator.WidgetList(), middleware.JWTMiddleware, controller.WidgetList)
	widget.Post("/", validator.CreateWidget(), middleware.JWTMiddleware, controller.CreateWidget)
	widget.Get("/:id", middleware.JWTMiddleware, controller.GetWidget)
	widget.Put("/:id", validator.UpdateWidget(), middleware.JWTMiddleware, controller.UpdateWidget)
	widget.Post("/:id/publish", middleware.JWTMiddleware, controller.PublishWidget)
	widget.Post("/:id/unpublish", middleware.JWTMiddleware, controller.UnpublishWidget)
	widget.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("OWNER", "ADMIN"), controller.DeleteWidget)
	widget.Get("/:id/embed-snippet", middleware.JWTMiddleware, controller.EmbedSnippet)
}
