package widgetValidators

import (
	"encoding/json"
	"reviewdash/middleware"
	"reviewdash/models/widgetcfg"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors converts validator tag failures into the response error map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
			switch fe.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "min":
				errors[field] = "Must be at least " + fe.Param() + " characters long!"
			case "max":
				errors[field] = "Must not exceed " + fe.Param() + " characters!"
			case "oneof":
				errors[field] = "Must be one of: " + fe.Param() + "!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

func CreateWidget() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name" validate:"required,min=2,max=80"`
			Template string `json:"template" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			errors = fieldErrors(err)
		}

		if errors["template"] == "" {
			known := false
			for _, name := range widgetcfg.TemplateNames {
				if name == reqData.Template {
					known = true
					break
				}
			}
			if !known {
				errors["template"] = "Unknown template! Allowed: " + strings.Join(widgetcfg.TemplateNames, ", ")
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateWidget", reqData)
		return c.Next()
	}
}

func UpdateWidget() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   *string         `json:"name"`
			Config json.RawMessage `json:"config"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			*reqData.Name = strings.TrimSpace(*reqData.Name)
			if *reqData.Name == "" {
				errors["name"] = "Name must not be empty!"
			}
			if len(*reqData.Name) > 80 {
				errors["name"] = "Name must not exceed 80 characters!"
			}
		}

		// Config structure is checked by the config parser in the controller;
		// here only the presence of at least one change matters.
		if reqData.Name == nil && len(reqData.Config) == 0 {
			errors["config"] = "Nothing to update!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateWidget", reqData)
		return c.Next()
	}
}

func WidgetList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
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
		if reqData.Status != nil {
			valid := map[string]bool{"DRAFT": true, "PUBLISHED": true}
			if !valid[strings.ToUpper(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: DRAFT, PUBLISHED."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWidgetList", reqData)
		return c.Next()
	}
}
