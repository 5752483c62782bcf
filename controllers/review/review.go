package reviewControllers

import (
	"log"

	"reviewdash/database"
	"reviewdash/middleware"
	"reviewdash/models"
	"reviewdash/utils"

	"github.com/gofiber/fiber/v2"
)

func ReviewList(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReviewList").(*struct {
		Page       *int  `query:"page"`
		Limit      *int  `query:"limit"`
		LocationID *uint `query:"locationId"`
		MinRating  *int  `query:"minRating"`
		Pinned     *bool `query:"pinned"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Pagination setup
	page := 1
	limit := 20
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Review{}).Where("company_id = ? AND is_deleted = false", companyID)
	if reqData.LocationID != nil {
		db = db.Where("location_id = ?", *reqData.LocationID)
	}
	if reqData.MinRating != nil {
		db = db.Where("rating >= ?", *reqData.MinRating)
	}
	if reqData.Pinned != nil {
		db = db.Where("pinned = ?", *reqData.Pinned)
	}

	var total int64
	db.Count(&total)

	var reviews []models.Review
	if err := db.Order("reviewed_at DESC").Offset(offset).Limit(limit).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// PinReview pins or unpins a review so the widget pipeline surfaces it
// first.
func PinReview(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPinReview").(*struct {
		ReviewID uint `json:"reviewId"`
		Pinned   bool `json:"pinned"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var review models.Review
	if err := database.Database.Db.
		Where("id = ? AND company_id = ? AND is_deleted = false", reqData.ReviewID, companyID).
		First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := database.Database.Db.Model(&review).Update("pinned", reqData.Pinned).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	review.Pinned = reqData.Pinned
	message := "Review unpinned successfully!"
	if reqData.Pinned {
		message = "Review pinned successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, review)
}

// SyncReviews triggers an immediate provider sync for one location instead
// of waiting for the hourly scheduler.
func SyncReviews(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSyncLocation").(*struct {
		LocationID uint `json:"locationId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var location models.Location
	if err := database.Database.Db.
		Where("id = ? AND company_id = ? AND is_deleted = false", reqData.LocationID, companyID).
		First(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	go func(loc models.Location) {
		if err := utils.SyncLocation(loc); err != nil {
			log.Printf("Manual review sync failed for location %d: %v", loc.ID, err)
		}
	}(location)

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Review sync started!", nil)
}

// SendReviewInvite emails a customer a direct link to leave a review on the
// location's provider page.
func SendReviewInvite(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSendInvite").(*struct {
		Email      string `json:"email" validate:"required,email"`
		Name       string `json:"name"`
		LocationID uint   `json:"locationId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var location models.Location
	if err := database.Database.Db.
		Where("id = ? AND company_id = ? AND is_deleted = false", reqData.LocationID, companyID).
		First(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}
	if location.WriteReviewURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Location has no write-review URL configured!", nil)
	}

	var company models.Company
	if err := database.Database.Db.First(&company, companyID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch company!", nil)
	}

	utils.SendReviewInviteEmail(reqData.Email, reqData.Name, company.Name, location.WriteReviewURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review invitation sent!", nil)
}
