package companyValidators

import (
	"reviewdash/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func UpdateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    *string `json:"name"`
			Website *string `json:"website"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			*reqData.Name = strings.TrimSpace(*reqData.Name)
			if *reqData.Name == "" {
				errors["name"] = "Company name must not be empty!"
			}
			if len(*reqData.Name) > 100 {
				errors["name"] = "Company name must not exceed 100 characters!"
			}
		}
		if reqData.Website != nil && *reqData.Website != "" {
			if err := validate.Var(*reqData.Website, "url"); err != nil {
				errors["website"] = "Website must be a valid URL!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCompany", reqData)
		return c.Next()
	}
}

func AddLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Provider       string `json:"provider" validate:"required,oneof=GOOGLE FACEBOOK YELP"`
			PlaceID        string `json:"placeId" validate:"required"`
			Label          string `json:"label"`
			WriteReviewURL string `json:"writeReviewUrl" validate:"omitempty,url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Provider = strings.ToUpper(strings.TrimSpace(reqData.Provider))
		reqData.PlaceID = strings.TrimSpace(reqData.PlaceID)
		reqData.Label = strings.TrimSpace(reqData.Label)

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					switch fe.StructField() {
					case "Provider":
						errors["provider"] = "Provider is required! Allowed: GOOGLE, FACEBOOK, YELP"
					case "PlaceID":
						errors["placeId"] = "Place ID is required!"
					case "WriteReviewURL":
						errors["writeReviewUrl"] = "Write review URL must be a valid URL!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddLocation", reqData)
		return c.Next()
	}
}
