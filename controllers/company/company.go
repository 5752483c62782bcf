package companyControllers

import (
	"reviewdash/database"
	"reviewdash/middleware"
	"reviewdash/models"

	"github.com/gofiber/fiber/v2"
)

func CompanyProfile(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var company models.Company
	if err := database.Database.Db.
		Preload("Locations", "is_deleted = false").
		Where("id = ? AND is_deleted = false", companyID).
		First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched successfully!", company)
}

func UpdateCompany(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateCompany").(*struct {
		Name    *string `json:"name"`
		Website *string `json:"website"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", companyID).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	fields := map[string]interface{}{}
	if reqData.Name != nil {
		fields["name"] = *reqData.Name
	}
	if reqData.Website != nil {
		fields["website"] = *reqData.Website
	}

	if len(fields) > 0 {
		if err := database.Database.Db.Model(&company).Updates(fields).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}

// AddLocation registers a review source for the company. The sync scheduler
// picks it up on its next run.
func AddLocation(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAddLocation").(*struct {
		Provider       string `json:"provider" validate:"required,oneof=GOOGLE FACEBOOK YELP"`
		PlaceID        string `json:"placeId" validate:"required"`
		Label          string `json:"label"`
		WriteReviewURL string `json:"writeReviewUrl" validate:"omitempty,url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// One location per provider/place pair per company
	var existing models.Location
	err := database.Database.Db.
		Where("company_id = ? AND provider = ? AND place_id = ? AND is_deleted = false",
			companyID, reqData.Provider, reqData.PlaceID).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This location is already connected!", nil)
	}

	location := models.Location{
		CompanyID:      companyID,
		Provider:       reqData.Provider,
		PlaceID:        reqData.PlaceID,
		Label:          reqData.Label,
		WriteReviewURL: reqData.WriteReviewURL,
	}
	if err := database.Database.Db.Create(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Location added successfully!", location)
}

func LocationList(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var locations []models.Location
	if err := database.Database.Db.
		Where("company_id = ? AND is_deleted = false", companyID).
		Order("created_at DESC").
		Find(&locations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch locations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Locations fetched successfully!", locations)
}

func DeleteLocation(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid location id!", nil)
	}

	res := database.Database.Db.Model(&models.Location{}).
		Where("id = ? AND company_id = ? AND is_deleted = false", id, companyID).
		Update("is_deleted", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete location!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Location deleted successfully!", nil)
}
