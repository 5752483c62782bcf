package widgetControllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"reviewdash/config"
	"reviewdash/database"
	"reviewdash/middleware"
	"reviewdash/models"
	"reviewdash/models/widgetcfg"
	"reviewdash/widget/gateway"

	"github.com/gofiber/fiber/v2"
)

func gw() gateway.Gateway {
	return gateway.NewGormGateway(database.Database.Db)
}

// ownedWidget loads a widget and checks it belongs to the caller's company.
// Foreign widgets are indistinguishable from missing ones.
func ownedWidget(c *fiber.Ctx, id uint) (models.Widget, error) {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return models.Widget{}, gateway.ErrNotFound
	}
	widget, err := gw().GetWidget(c.Context(), id)
	if err != nil {
		return models.Widget{}, err
	}
	if widget.CompanyID != companyID {
		return models.Widget{}, gateway.ErrNotFound
	}
	return widget, nil
}

func widgetIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func WidgetList(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedWidgetList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Pagination setup
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Widget{}).Where("company_id = ? AND is_deleted = false", companyID)
	if reqData.Status != nil {
		db = db.Where("status = ?", *reqData.Status)
	}

	var total int64
	db.Count(&total)

	var widgets []models.Widget
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&widgets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch widgets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Widgets fetched successfully!", fiber.Map{
		"widgets": widgets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CreateWidget creates a new widget from a named layout template.
func CreateWidget(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateWidget").(*struct {
		Name     string `json:"name" validate:"required,min=2,max=80"`
		Template string `json:"template" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cfgJSON, err := json.Marshal(widgetcfg.Template(reqData.Template))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build widget config!", nil)
	}

	widget, err := gw().CreateWidget(c.Context(), gateway.CreateInput{
		CompanyID:  companyID,
		Name:       reqData.Name,
		Type:       reqData.Template,
		ConfigJSON: cfgJSON,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create widget!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Widget created successfully!", widget)
}

func GetWidget(c *fiber.Ctx) error {
	id, ok := widgetIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid widget id!", nil)
	}

	widget, err := ownedWidget(c, id)
	if errors.Is(err, gateway.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Widget not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch widget!", nil)
	}

	// Stored configs may predate newer config fields; the parser backfills
	// them so the editor always sees a complete config.
	cfg, err := widgetcfg.Parse(widget.ConfigJSON)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Stored widget config is corrupt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Widget fetched successfully!", fiber.Map{
		"widget": widget,
		"config": cfg,
	})
}

// UpdateWidget renames a widget and/or replaces its config. Configs go
// through the parser so malformed payloads are rejected at the boundary and
// partial payloads are stored in their completed form.
func UpdateWidget(c *fiber.Ctx) error {
	id, ok := widgetIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid widget id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateWidget").(*struct {
		Name   *string         `json:"name"`
		Config json.RawMessage `json:"config"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := ownedWidget(c, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Widget not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch widget!", nil)
	}

	upd := gateway.Update{Name: reqData.Name}

	if len(reqData.Config) > 0 {
		cfg, err := widgetcfg.Parse(reqData.Config)
		if err != nil {
			var verr *widgetcfg.ValidationError
			if errors.As(err, &verr) {
				return middleware.ValidationErrorResponse(c, map[string]string{verr.Field: verr.Reason})
			}
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid widget config!", nil)
		}
		cfgJSON, err := json.Marshal(cfg)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to serialize config!", nil)
		}
		upd.ConfigJSON = cfgJSON
	}

	widget, err := gw().UpdateWidget(c.Context(), id, upd)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Widget not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update widget!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Widget updated successfully!", widget)
}

func setStatus(c *fiber.Ctx, status, message string) error {
	id, ok := widgetIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid widget id!", nil)
	}

	if _, err := ownedWidget(c, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Widget not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch widget!", nil)
	}

	widget, err := gw().UpdateWidget(c.Context(), id, gateway.Update{Status: &status})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update widget status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, widget)
}

func PublishWidget(c *fiber.Ctx) error {
	return setStatus(c, models.WidgetStatusPublished, "Widget published successfully!")
}

func UnpublishWidget(c *fiber.Ctx) error {
	return setStatus(c, models.WidgetStatusDraft, "Widget unpublished successfully!")
}

func DeleteWidget(c *fiber.Ctx) error {
	id, ok := widgetIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid widget id!", nil)
	}

	if _, err := ownedWidget(c, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Widget not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch widget!", nil)
	}

	if err := gw().DeleteWidget(c.Context(), id); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete widget!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Widget deleted successfully!", nil)
}

// EmbedSnippet returns the copy-paste embed code for a widget. The snippet
// references the public key only; numeric ids never leave the dashboard.
func EmbedSnippet(c *fiber.Ctx) error {
	id, ok := widgetIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid widget id!", nil)
	}

	widget, err := ownedWidget(c, id)
	if errors.Is(err, gateway.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Widget not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch widget!", nil)
	}

	base := config.AppConfig.PublicBaseURL
	script := fmt.Sprintf(
		`<div class="rw-embed" data-widget-key="%s"></div>
<script async src="%s/embed/widget.js"></script>`,
		widget.PublicKey, base,
	)
	iframe := fmt.Sprintf(
		`<iframe src="%s/embed/%s" style="width:100%%;border:0;" loading="lazy" title="Customer reviews"></iframe>`,
		base, widget.PublicKey,
	)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Embed snippet generated!", fiber.Map{
		"script": script,
		"iframe": iframe,
	})
}
