package publicRoutes

import (
	controller "reviewdash/controllers/public"

	"github.com/gofiber/fiber/v2"
)

// SetupPublicRoutes registers the unauthenticated embed endpoints.
func SetupPublicRoutes(app *fiber.App) {
	embed := app.Group("/embed")

	embed.Get("/widget.js", controller.WidgetLoader)
	embed.Get("/:key", controller.RenderWidget)
	embed.Get("/:key/payload", controller.WidgetPayload)
}
