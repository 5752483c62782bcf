package authValidators

import (
	"reviewdash/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyName string `json:"companyName" validate:"required,min=2,max=100"`
			Name        string `json:"name" validate:"required,min=2,max=60"`
			Email       string `json:"email" validate:"required,email"`
			Password    string `json:"password" validate:"required,min=8,max=72"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.CompanyName = strings.TrimSpace(reqData.CompanyName)
		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					switch fe.StructField() {
					case "CompanyName":
						errors["companyName"] = "Company name must be 2-100 characters!"
					case "Name":
						errors["name"] = "Name must be 2-60 characters!"
					case "Email":
						errors["email"] = "A valid email address is required!"
					case "Password":
						errors["password"] = "Password must be 8-72 characters!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					switch fe.StructField() {
					case "Email":
						errors["email"] = "A valid email address is required!"
					case "Password":
						errors["password"] = "Password is required!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
