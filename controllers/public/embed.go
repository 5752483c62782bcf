package publicControllers

import (
	"bytes"
	"errors"
	"fmt"

	"reviewdash/config"
	"reviewdash/database"
	"reviewdash/models"
	"reviewdash/models/widgetcfg"
	"reviewdash/widget/gateway"
	"reviewdash/widget/render"
	"reviewdash/widget/selection"

	"github.com/gofiber/fiber/v2"
)

// notAvailableHTML is the neutral embed body for anything that cannot be
// served: unknown key, unpublished widget, corrupt config. It deliberately
// reveals nothing about why.
const notAvailableHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"></head>
<body style="margin:0"><!-- widget not available --></body></html>`

func notAvailable(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusNotFound).SendString(notAvailableHTML)
}

// sourceData is what a resolved widget needs from the review store.
type sourceData struct {
	reviews        []models.Review
	summary        *selection.Summary
	writeReviewURL string
}

// loadSources fetches the reviews behind the config's sources. An empty
// source list falls back to every location of the owning company.
func loadSources(companyID uint, cfg widgetcfg.Config) (sourceData, error) {
	db := database.Database.Db

	locQuery := db.Model(&models.Location{}).Where("company_id = ? AND is_deleted = false", companyID)
	if len(cfg.Sources) > 0 {
		matcher := db.Where("1 = 0")
		for _, src := range cfg.Sources {
			matcher = matcher.Or("provider = ? AND place_id = ?", src.Provider, src.PlaceID)
		}
		locQuery = locQuery.Where(matcher)
	}

	var locations []models.Location
	if err := locQuery.Find(&locations).Error; err != nil {
		return sourceData{}, err
	}

	data := sourceData{}
	if len(locations) == 0 {
		return data, nil
	}
	data.writeReviewURL = locations[0].WriteReviewURL

	ids := make([]uint, 0, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.ID)
	}

	if err := db.Where("location_id IN ? AND is_deleted = false", ids).
		Order("reviewed_at DESC").
		Find(&data.reviews).Error; err != nil {
		return sourceData{}, err
	}

	// The rating summary always covers the full source set, not the
	// filtered subset the widget displays.
	data.summary = selection.Summarize(data.reviews)
	return data, nil
}

func resolve(c *fiber.Ctx) (models.Widget, widgetcfg.Config, sourceData, error) {
	key := c.Params("key")
	if key == "" {
		return models.Widget{}, widgetcfg.Config{}, sourceData{}, gateway.ErrNotFound
	}

	widget, err := gateway.NewGormGateway(database.Database.Db).PublishedByKey(c.Context(), key)
	if err != nil {
		return models.Widget{}, widgetcfg.Config{}, sourceData{}, err
	}

	cfg, err := widgetcfg.Parse(widget.ConfigJSON)
	if err != nil {
		return models.Widget{}, widgetcfg.Config{}, sourceData{}, err
	}

	data, err := loadSources(widget.CompanyID, cfg)
	if err != nil {
		return models.Widget{}, widgetcfg.Config{}, sourceData{}, err
	}
	return widget, cfg, data, nil
}

// RenderWidget serves the standalone embed HTML for a published widget.
func RenderWidget(c *fiber.Ctx) error {
	_, cfg, data, err := resolve(c)
	if err != nil {
		return notAvailable(c)
	}

	var buf bytes.Buffer
	err = render.Render(&buf, render.Payload{
		Config:         cfg,
		Summary:        data.summary,
		Reviews:        data.reviews,
		WriteReviewURL: data.writeReviewURL,
		ParentOrigin:   config.AppConfig.EmbedParentOrigin,
	})
	if err != nil {
		return notAvailable(c)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "public, max-age=60")
	return c.SendString(buf.String())
}

// WidgetPayload serves the widget data as JSON for clients that render
// themselves instead of using the iframe.
func WidgetPayload(c *fiber.Ctx) error {
	_, cfg, data, err := resolve(c)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  false,
				"message": "Widget not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Widget not available",
		})
	}

	var shown []models.Review
	if cfg.Layout.Type != widgetcfg.LayoutBadge {
		shown = selection.Select(data.reviews, cfg.Reviews, true)
	}

	return c.JSON(fiber.Map{
		"status": true,
		"data": fiber.Map{
			"config":         cfg,
			"summary":        data.summary,
			"reviews":        shown,
			"writeReviewUrl": data.writeReviewURL,
		},
	})
}

// WidgetLoader serves the embed loader script. It swaps every placeholder
// div for an iframe and keeps the iframe height in sync via the height
// messages the widget posts.
func WidgetLoader(c *fiber.Ctx) error {
	script := fmt.Sprintf(`(function () {
  var base = %q;
  var nodes = document.querySelectorAll(".rw-embed[data-widget-key]");
  var frames = {};
  for (var i = 0; i < nodes.length; i++) {
    var node = nodes[i];
    if (node.getAttribute("data-rw-loaded")) continue;
    node.setAttribute("data-rw-loaded", "1");
    var key = node.getAttribute("data-widget-key");
    var frame = document.createElement("iframe");
    frame.src = base + "/embed/" + encodeURIComponent(key);
    frame.style.width = "100%%";
    frame.style.border = "0";
    frame.style.display = "block";
    frame.setAttribute("loading", "lazy");
    frame.setAttribute("title", "Customer reviews");
    node.appendChild(frame);
    frames[key] = frame;
  }
  window.addEventListener("message", function (event) {
    var msg = event.data;
    if (!msg || msg.type !== %q || typeof msg.height !== "number") return;
    for (var key in frames) {
      if (frames[key].contentWindow === event.source) {
        frames[key].style.height = msg.height + "px";
      }
    }
  });
})();`, config.AppConfig.PublicBaseURL, render.HeightMessageType)

	c.Set(fiber.HeaderContentType, "application/javascript; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.SendString(script)
}
