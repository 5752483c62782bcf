package reviewRoutes

import (
	controller "reviewdash/controllers/review"
	"reviewdash/middleware"
	validator "reviewdash/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews")

	review.Get("/", validator.ReviewList(), middleware.JWTMiddleware, controller.ReviewList)
	review.Post("/pin", validator.PinReview(), middleware.JWTMiddleware, controller.PinReview)
	review.Post("/sync", validator.SyncLocation(), middleware.JWTMiddleware, controller.SyncReviews)
	review.Post("/invite", validator.SendInvite(), middleware.JWTMiddleware, controller.SendReviewInvite)
}
