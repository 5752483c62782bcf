package widgetcfg

import (
	"encoding/json"
	"errors"
	"strconv"
)

// Layout type enum values (closed world)
type LayoutType string

const (
	LayoutCarousel LayoutType = "carousel"
	LayoutGrid     LayoutType = "grid"
	LayoutMasonry  LayoutType = "masonry"
	LayoutList     LayoutType = "list"
	LayoutSlider   LayoutType = "slider"
	LayoutBadge    LayoutType = "badge"
)

func (t LayoutType) Valid() bool {
	switch t {
	case LayoutCarousel, LayoutGrid, LayoutMasonry, LayoutList, LayoutSlider, LayoutBadge:
		return true
	}
	return false
}

// SortOrder enum values
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

func (s SortOrder) Valid() bool {
	return s == SortNewest || s == SortHighest || s == SortLowest
}

// ColorScheme enum values
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

func (s ColorScheme) Valid() bool {
	return s == SchemeLight || s == SchemeDark
}

// ScrollMode enum values
type ScrollMode string

const (
	ScrollByItem ScrollMode = "item"
	ScrollByPage ScrollMode = "page"
)

func (s ScrollMode) Valid() bool {
	return s == ScrollByItem || s == ScrollByPage
}

// Config is one widget's full configuration. A Config obtained from Parse
// or Template is always complete; zero-value Configs are not renderable.
type Config struct {
	Sources  []Source     `json:"source"`
	Layout   Layout       `json:"layout"`
	Header   Header       `json:"header"`
	Reviews  ReviewFilter `json:"reviews"`
	Style    Style        `json:"style"`
	Settings Settings     `json:"settings"`
}

// Source references one review source location.
type Source struct {
	Provider string `json:"provider"`
	PlaceID  string `json:"placeId"`
	Label    string `json:"label"`
}

type Layout struct {
	Type        LayoutType `json:"type"`
	Width       Width      `json:"width"`
	Columns     Columns    `json:"columns"`
	RowsDesktop int        `json:"rowsDesktop"`
	RowsMobile  int        `json:"rowsMobile"`
	ItemSpacing int        `json:"itemSpacing"`
	Autoplay    Autoplay   `json:"autoplay"`
	Navigation  Navigation `json:"navigation"`
	Animation   string     `json:"animation"`
	ScrollMode  ScrollMode `json:"scrollMode"`
}

type Autoplay struct {
	Enabled      bool `json:"enabled"`
	Interval     int  `json:"interval"` // milliseconds
	PauseOnHover bool `json:"pauseOnHover"`
}

type Navigation struct {
	Arrows bool `json:"arrows"`
	Dots   bool `json:"dots"`
	Swipe  bool `json:"swipe"`
}

type Header struct {
	Enabled           bool              `json:"enabled"`
	Title             string            `json:"title"`
	ShowRatingSummary bool              `json:"showRatingSummary"`
	ShowReviewCount   bool              `json:"showReviewCount"`
	WriteReviewButton WriteReviewButton `json:"writeReviewButton"`
}

type WriteReviewButton struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	URL     string `json:"url,omitempty"`
}

// ReviewFilter is the filter/sort spec consumed by widget/selection.
type ReviewFilter struct {
	MinRating       int        `json:"minRating"`
	MaxReviews      MaxReviews `json:"maxReviews"`
	SortBy          SortOrder  `json:"sortBy"`
	ShowWithoutText bool       `json:"showWithoutText"`
}

type Style struct {
	ColorScheme ColorScheme `json:"colorScheme"`
	AccentColor string      `json:"accentColor"`
	// CustomCSS is injected verbatim into the rendered widget. Privileged
	// input: it only ever arrives through the authenticated builder path.
	CustomCSS string `json:"customCss"`
}

type Settings struct {
	Language      string        `json:"language"`
	AutoTranslate bool          `json:"autoTranslate"`
	ExternalLinks ExternalLinks `json:"externalLinks"`
	Schema        SchemaMarkup  `json:"schema"`
}

type ExternalLinks struct {
	Enabled      bool `json:"enabled"`
	OpenInNewTab bool `json:"openInNewTab"`
}

type SchemaMarkup struct {
	Enabled bool `json:"enabled"`
}

// Width is a fixed pixel width or the "responsive" sentinel.
type Width struct {
	Responsive bool
	Px         int
}

func ResponsiveWidth() Width  { return Width{Responsive: true} }
func FixedWidth(px int) Width { return Width{Px: px} }

func (w Width) MarshalJSON() ([]byte, error) {
	if w.Responsive {
		return json.Marshal("responsive")
	}
	return json.Marshal(w.Px)
}

func (w *Width) UnmarshalJSON(b []byte) error {
	v, err := sentinelInt(b, "responsive")
	if err != nil {
		return err
	}
	if v == nil {
		*w = Width{Responsive: true}
		return nil
	}
	*w = Width{Px: *v}
	return nil
}

// Columns is a positive column count or the "auto" sentinel.
type Columns struct {
	Auto bool
	N    int
}

func AutoColumns() Columns       { return Columns{Auto: true} }
func FixedColumns(n int) Columns { return Columns{N: n} }

func (c Columns) MarshalJSON() ([]byte, error) {
	if c.Auto {
		return json.Marshal("auto")
	}
	return json.Marshal(c.N)
}

func (c *Columns) UnmarshalJSON(b []byte) error {
	v, err := sentinelInt(b, "auto")
	if err != nil {
		return err
	}
	if v == nil {
		*c = Columns{Auto: true}
		return nil
	}
	*c = Columns{N: *v}
	return nil
}

// MaxReviews is a positive cap or the "all" sentinel.
type MaxReviews struct {
	All bool
	N   int
}

func AllReviews() MaxReviews  { return MaxReviews{All: true} }
func AtMost(n int) MaxReviews { return MaxReviews{N: n} }

func (m MaxReviews) MarshalJSON() ([]byte, error) {
	if m.All {
		return json.Marshal("all")
	}
	return json.Marshal(m.N)
}

func (m *MaxReviews) UnmarshalJSON(b []byte) error {
	v, err := sentinelInt(b, "all")
	if err != nil {
		return err
	}
	if v == nil {
		*m = MaxReviews{All: true}
		return nil
	}
	*m = MaxReviews{N: *v}
	return nil
}

// sentinelInt decodes a value that must be either the given sentinel string
// or a positive integer. Returns nil for the sentinel.
func sentinelInt(b []byte, sentinel string) (*int, error) {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == sentinel {
			return nil, nil
		}
		return nil, errors.New(`must be a positive integer or "` + sentinel + `"`)
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return nil, errors.New(`must be a positive integer or "` + sentinel + `"`)
	}
	if n <= 0 {
		return nil, errors.New("must be greater than 0, got " + strconv.Itoa(n))
	}
	return &n, nil
}
