// Package render turns a parsed widget config plus reviews into the
// embeddable HTML widget, including the cross-frame height protocol.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"reviewdash/models"
	"reviewdash/models/widgetcfg"
	"reviewdash/widget/selection"
)

// HeightMessageType is the cross-frame message discriminator the embed
// loader listens for: {type: "rc-widget-height", height: <px>}.
const HeightMessageType = "rc-widget-height"

// Payload is everything one render needs. Reviews are the raw collected
// set; Render applies the config's filter/sort spec itself so it stays
// usable standalone.
type Payload struct {
	Config  widgetcfg.Config
	Summary *selection.Summary
	Reviews []models.Review

	// WriteReviewURL is the source-provided CTA fallback when the config
	// does not carry an explicit writeReviewButton.url.
	WriteReviewURL string

	// ParentOrigin restricts where height messages are posted. Empty keeps
	// the legacy any-origin behaviour for existing embeds.
	ParentOrigin string
}

type viewData struct {
	Cfg      widgetcfg.Config
	Reviews  []models.Review
	Summary  *selection.Summary
	CTAURL   string
	IsSlides bool // carousel or slider
	Autoplay bool

	RootStyle   template.CSS
	Palette     template.CSS
	CustomCSS   template.CSS
	AccentColor string

	ParentOrigin string
	SchemaJSON   template.JS
	LinkTarget   string
}

// Render writes the widget HTML for the payload. Configs are expected to
// have passed through widgetcfg.Parse already; an incomplete config is
// defensively replaced with the default template rather than half-rendered.
func Render(w io.Writer, p Payload) error {
	cfg := p.Config
	if !cfg.Layout.Type.Valid() {
		cfg = widgetcfg.Template(string(cfg.Layout.Type))
	}

	isSlides := cfg.Layout.Type == widgetcfg.LayoutCarousel || cfg.Layout.Type == widgetcfg.LayoutSlider

	data := viewData{
		Cfg:          cfg,
		Summary:      p.Summary,
		CTAURL:       ctaURL(cfg, p.WriteReviewURL),
		IsSlides:     isSlides,
		Autoplay:     isSlides && cfg.Layout.Autoplay.Enabled,
		RootStyle:    rootStyle(cfg.Layout),
		Palette:      palette(cfg.Style),
		CustomCSS:    template.CSS(cfg.Style.CustomCSS),
		AccentColor:  cfg.Style.AccentColor,
		ParentOrigin: p.ParentOrigin,
		LinkTarget:   linkTarget(cfg.Settings.ExternalLinks),
	}

	// Badge widgets show the aggregate only; every other layout gets the
	// filtered review list.
	if cfg.Layout.Type != widgetcfg.LayoutBadge {
		data.Reviews = selection.Select(p.Reviews, cfg.Reviews, true)
	}

	if cfg.Settings.Schema.Enabled && p.Summary != nil {
		data.SchemaJSON = schemaJSON(p.Summary)
	}

	return widgetTmpl.Execute(w, data)
}

// ctaURL picks the write-review target: explicit config URL wins, then the
// source-provided fallback.
func ctaURL(cfg widgetcfg.Config, fallback string) string {
	if cfg.Header.WriteReviewButton.URL != "" {
		return cfg.Header.WriteReviewButton.URL
	}
	return fallback
}

func linkTarget(links widgetcfg.ExternalLinks) string {
	if links.OpenInNewTab {
		return "_blank"
	}
	return "_self"
}

func rootStyle(l widgetcfg.Layout) template.CSS {
	var b strings.Builder
	if l.Width.Responsive {
		b.WriteString("width:100%;")
	} else {
		fmt.Fprintf(&b, "width:%dpx;", l.Width.Px)
	}
	fmt.Fprintf(&b, "--rw-gap:%dpx;", l.ItemSpacing)
	if !l.Columns.Auto {
		fmt.Fprintf(&b, "--rw-cols:%d;", l.Columns.N)
	}
	return template.CSS(b.String())
}

func palette(s widgetcfg.Style) template.CSS {
	bg, fg, muted, card := "#ffffff", "#111827", "#6b7280", "#f9fafb"
	if s.ColorScheme == widgetcfg.SchemeDark {
		bg, fg, muted, card = "#111827", "#f9fafb", "#9ca3af", "#1f2937"
	}
	return template.CSS(fmt.Sprintf(
		"--rw-bg:%s;--rw-fg:%s;--rw-muted:%s;--rw-card:%s;--rw-accent:%s;",
		bg, fg, muted, card, s.AccentColor,
	))
}

func schemaJSON(s *selection.Summary) template.JS {
	b, err := json.Marshal(map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "AggregateRating",
		"ratingValue": fmt.Sprintf("%.1f", s.AvgRating),
		"reviewCount": s.TotalReviews,
		"bestRating":  "5",
		"worstRating": "1",
	})
	if err != nil {
		return ""
	}
	return template.JS(b)
}

var widgetTmpl = template.Must(template.New("widget").Funcs(template.FuncMap{
	"stars": func(rating int) string {
		if rating < 0 {
			rating = 0
		}
		if rating > 5 {
			rating = 5
		}
		return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
	},
	"starsAvg": func(avg float64) string {
		full := int(avg + 0.5)
		if full < 0 {
			full = 0
		}
		if full > 5 {
			full = 5
		}
		return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
	},
	"fmtDate": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"fmtRating": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
}).Parse(widgetHTML))
