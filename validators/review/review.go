package reviewValidators

import (
	"reviewdash/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func ReviewList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page       *int  `query:"page"`
			Limit      *int  `query:"limit"`
			LocationID *uint `query:"locationId"`
			MinRating  *int  `query:"minRating"`
			Pinned     *bool `query:"pinned"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.MinRating != nil && (*reqData.MinRating < 1 || *reqData.MinRating > 5) {
			errors["minRating"] = "Minimum rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewList", reqData)
		return c.Next()
	}
}

func PinReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReviewID uint `json:"reviewId"`
			Pinned   bool `json:"pinned"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ReviewID == 0 {
			errors["reviewId"] = "Review ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPinReview", reqData)
		return c.Next()
	}
}

func SendInvite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email      string `json:"email" validate:"required,email"`
			Name       string `json:"name"`
			LocationID uint   `json:"locationId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Name = strings.TrimSpace(reqData.Name)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			errors["email"] = "A valid email address is required!"
		}
		if reqData.LocationID == 0 {
			errors["locationId"] = "Location ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSendInvite", reqData)
		return c.Next()
	}
}

func SyncLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LocationID uint `json:"locationId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LocationID == 0 {
			errors["locationId"] = "Location ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSyncLocation", reqData)
		return c.Next()
	}
}
