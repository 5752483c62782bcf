package widgetcfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ValidationError reports a structurally invalid field in a supplied config.
// Missing fields never produce one; they are defaulted instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid widget config: " + e.Reason
	}
	return fmt.Sprintf("invalid widget config: %s %s", e.Field, e.Reason)
}

// Raw mirror of Config with every leaf optional, so that a partial or
// legacy payload can be told apart from one with wrong-shaped fields.
type rawConfig struct {
	Source   *[]Source    `json:"source"`
	Layout   *rawLayout   `json:"layout"`
	Header   *rawHeader   `json:"header"`
	Reviews  *rawReviews  `json:"reviews"`
	Style    *rawStyle    `json:"style"`
	Settings *rawSettings `json:"settings"`
}

type rawLayout struct {
	Type        *string         `json:"type"`
	Width       json.RawMessage `json:"width"`
	Columns     json.RawMessage `json:"columns"`
	RowsDesktop *int            `json:"rowsDesktop"`
	RowsMobile  *int            `json:"rowsMobile"`
	ItemSpacing *int            `json:"itemSpacing"`
	Autoplay    *rawAutoplay    `json:"autoplay"`
	Navigation  *rawNavigation  `json:"navigation"`
	Animation   *string         `json:"animation"`
	ScrollMode  *string         `json:"scrollMode"`
}

type rawAutoplay struct {
	Enabled      *bool `json:"enabled"`
	Interval     *int  `json:"interval"`
	PauseOnHover *bool `json:"pauseOnHover"`
}

type rawNavigation struct {
	Arrows *bool `json:"arrows"`
	Dots   *bool `json:"dots"`
	Swipe  *bool `json:"swipe"`
}

type rawHeader struct {
	Enabled           *bool      `json:"enabled"`
	Title             *string    `json:"title"`
	ShowRatingSummary *bool      `json:"showRatingSummary"`
	ShowReviewCount   *bool      `json:"showReviewCount"`
	WriteReviewButton *rawButton `json:"writeReviewButton"`
}

type rawButton struct {
	Enabled *bool   `json:"enabled"`
	Text    *string `json:"text"`
	URL     *string `json:"url"`
}

type rawReviews struct {
	MinRating       *int            `json:"minRating"`
	MaxReviews      json.RawMessage `json:"maxReviews"`
	SortBy          *string         `json:"sortBy"`
	ShowWithoutText *bool           `json:"showWithoutText"`
}

type rawStyle struct {
	ColorScheme *string `json:"colorScheme"`
	AccentColor *string `json:"accentColor"`
	CustomCSS   *string `json:"customCss"`
}

type rawSettings struct {
	Language      *string           `json:"language"`
	AutoTranslate *bool             `json:"autoTranslate"`
	ExternalLinks *rawExternalLinks `json:"externalLinks"`
	Schema        *rawSchema        `json:"schema"`
}

type rawExternalLinks struct {
	Enabled      *bool `json:"enabled"`
	OpenInNewTab *bool `json:"openInNewTab"`
}

type rawSchema struct {
	Enabled *bool `json:"enabled"`
}

// Parse turns a possibly partial or legacy serialized config into a
// complete Config. Every missing leaf is backfilled from the template
// matching layout.type (carousel when absent or unrecognized). Wrong-shaped
// fields produce a *ValidationError naming the field path. Parse is
// idempotent: parsing a marshaled Parse result yields the same Config.
func Parse(raw []byte) (Config, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Template(string(LayoutCarousel)), nil
	}

	var rc rawConfig
	if err := json.Unmarshal(raw, &rc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return Config{}, &ValidationError{Field: field, Reason: "must be of type " + typeErr.Type.String()}
		}
		return Config{}, &ValidationError{Field: "(root)", Reason: "not valid JSON: " + err.Error()}
	}

	layoutType := LayoutCarousel
	if rc.Layout != nil && rc.Layout.Type != nil && LayoutType(*rc.Layout.Type).Valid() {
		layoutType = LayoutType(*rc.Layout.Type)
	}

	cfg := Template(string(layoutType))

	if rc.Source != nil {
		cfg.Sources = *rc.Source
		if cfg.Sources == nil {
			cfg.Sources = []Source{}
		}
	}

	if rc.Layout != nil {
		if err := mergeLayout(&cfg.Layout, rc.Layout); err != nil {
			return Config{}, err
		}
	}
	if rc.Header != nil {
		mergeHeader(&cfg.Header, rc.Header)
	}
	if rc.Reviews != nil {
		if err := mergeReviews(&cfg.Reviews, rc.Reviews); err != nil {
			return Config{}, err
		}
	}
	if rc.Style != nil {
		mergeStyle(&cfg.Style, rc.Style)
	}
	if rc.Settings != nil {
		mergeSettings(&cfg.Settings, rc.Settings)
	}

	return cfg, nil
}

func mergeLayout(dst *Layout, src *rawLayout) error {
	if len(src.Width) > 0 {
		var w Width
		if err := json.Unmarshal(src.Width, &w); err != nil {
			return &ValidationError{Field: "layout.width", Reason: err.Error()}
		}
		dst.Width = w
	}
	if len(src.Columns) > 0 {
		var c Columns
		if err := json.Unmarshal(src.Columns, &c); err != nil {
			return &ValidationError{Field: "layout.columns", Reason: err.Error()}
		}
		dst.Columns = c
	}
	if src.RowsDesktop != nil && *src.RowsDesktop > 0 {
		dst.RowsDesktop = *src.RowsDesktop
	}
	if src.RowsMobile != nil && *src.RowsMobile > 0 {
		dst.RowsMobile = *src.RowsMobile
	}
	if src.ItemSpacing != nil && *src.ItemSpacing >= 0 {
		dst.ItemSpacing = *src.ItemSpacing
	}
	if src.Autoplay != nil {
		if src.Autoplay.Enabled != nil {
			dst.Autoplay.Enabled = *src.Autoplay.Enabled
		}
		if src.Autoplay.Interval != nil && *src.Autoplay.Interval > 0 {
			dst.Autoplay.Interval = *src.Autoplay.Interval
		}
		if src.Autoplay.PauseOnHover != nil {
			dst.Autoplay.PauseOnHover = *src.Autoplay.PauseOnHover
		}
	}
	if src.Navigation != nil {
		if src.Navigation.Arrows != nil {
			dst.Navigation.Arrows = *src.Navigation.Arrows
		}
		if src.Navigation.Dots != nil {
			dst.Navigation.Dots = *src.Navigation.Dots
		}
		if src.Navigation.Swipe != nil {
			dst.Navigation.Swipe = *src.Navigation.Swipe
		}
	}
	if src.Animation != nil && *src.Animation != "" {
		dst.Animation = *src.Animation
	}
	if src.ScrollMode != nil && ScrollMode(*src.ScrollMode).Valid() {
		dst.ScrollMode = ScrollMode(*src.ScrollMode)
	}
	return nil
}

func mergeHeader(dst *Header, src *rawHeader) {
	if src.Enabled != nil {
		dst.Enabled = *src.Enabled
	}
	if src.Title != nil {
		dst.Title = *src.Title
	}
	if src.ShowRatingSummary != nil {
		dst.ShowRatingSummary = *src.ShowRatingSummary
	}
	if src.ShowReviewCount != nil {
		dst.ShowReviewCount = *src.ShowReviewCount
	}
	if src.WriteReviewButton != nil {
		if src.WriteReviewButton.Enabled != nil {
			dst.WriteReviewButton.Enabled = *src.WriteReviewButton.Enabled
		}
		if src.WriteReviewButton.Text != nil && *src.WriteReviewButton.Text != "" {
			dst.WriteReviewButton.Text = *src.WriteReviewButton.Text
		}
		if src.WriteReviewButton.URL != nil {
			dst.WriteReviewButton.URL = *src.WriteReviewButton.URL
		}
	}
}

func mergeReviews(dst *ReviewFilter, src *rawReviews) error {
	if src.MinRating != nil {
		// Out-of-range ratings clamp rather than error: the shape is fine,
		// only the value drifted.
		r := *src.MinRating
		if r < 1 {
			r = 1
		}
		if r > 5 {
			r = 5
		}
		dst.MinRating = r
	}
	if len(src.MaxReviews) > 0 {
		var m MaxReviews
		if err := json.Unmarshal(src.MaxReviews, &m); err != nil {
			return &ValidationError{Field: "reviews.maxReviews", Reason: err.Error()}
		}
		dst.MaxReviews = m
	}
	if src.SortBy != nil && SortOrder(*src.SortBy).Valid() {
		dst.SortBy = SortOrder(*src.SortBy)
	}
	if src.ShowWithoutText != nil {
		dst.ShowWithoutText = *src.ShowWithoutText
	}
	return nil
}

func mergeStyle(dst *Style, src *rawStyle) {
	if src.ColorScheme != nil && ColorScheme(*src.ColorScheme).Valid() {
		dst.ColorScheme = ColorScheme(*src.ColorScheme)
	}
	if src.AccentColor != nil && *src.AccentColor != "" {
		dst.AccentColor = *src.AccentColor
	}
	if src.CustomCSS != nil {
		dst.CustomCSS = *src.CustomCSS
	}
}

func mergeSettings(dst *Settings, src *rawSettings) {
	if src.Language != nil && *src.Language != "" {
		dst.Language = *src.Language
	}
	if src.AutoTranslate != nil {
		dst.AutoTranslate = *src.AutoTranslate
	}
	if src.ExternalLinks != nil {
		if src.ExternalLinks.Enabled != nil {
			dst.ExternalLinks.Enabled = *src.ExternalLinks.Enabled
		}
		if src.ExternalLinks.OpenInNewTab != nil {
			dst.ExternalLinks.OpenInNewTab = *src.ExternalLinks.OpenInNewTab
		}
	}
	if src.Schema != nil && src.Schema.Enabled != nil {
		dst.Schema.Enabled = *src.Schema.Enabled
	}
}
