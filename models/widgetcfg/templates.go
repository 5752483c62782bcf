package widgetcfg

// TemplateNames lists the selectable templates in display order.
var TemplateNames = []string{
	string(LayoutCarousel),
	string(LayoutGrid),
	string(LayoutMasonry),
	string(LayoutList),
	string(LayoutSlider),
	string(LayoutBadge),
}

// Template returns the complete default Config for the given layout type.
// Unknown or empty names fall back to the carousel template.
func Template(name string) Config {
	t := LayoutType(name)
	if !t.Valid() {
		t = LayoutCarousel
	}

	cfg := baseTemplate(t)

	switch t {
	case LayoutCarousel:
		cfg.Layout.Autoplay = Autoplay{Enabled: true, Interval: 5000, PauseOnHover: true}
		cfg.Layout.Navigation = Navigation{Arrows: true, Dots: true, Swipe: true}
	case LayoutSlider:
		cfg.Layout.Columns = FixedColumns(1)
		cfg.Layout.ScrollMode = ScrollByPage
		cfg.Layout.Autoplay = Autoplay{Enabled: true, Interval: 7000, PauseOnHover: true}
		cfg.Layout.Navigation = Navigation{Arrows: true, Dots: true, Swipe: true}
	case LayoutGrid:
		cfg.Layout.Columns = FixedColumns(3)
		cfg.Layout.RowsDesktop = 3
		cfg.Layout.RowsMobile = 6
	case LayoutMasonry:
		cfg.Layout.Columns = FixedColumns(3)
	case LayoutList:
		cfg.Layout.Columns = FixedColumns(1)
		cfg.Layout.Width = FixedWidth(720)
		cfg.Reviews.MaxReviews = AtMost(10)
	case LayoutBadge:
		cfg.Layout.Width = FixedWidth(240)
		cfg.Header.Enabled = false
		cfg.Settings.Schema = SchemaMarkup{Enabled: true}
	}

	return cfg
}

// baseTemplate holds the defaults shared by every layout type.
func baseTemplate(t LayoutType) Config {
	return Config{
		Sources: []Source{},
		Layout: Layout{
			Type:        t,
			Width:       ResponsiveWidth(),
			Columns:     AutoColumns(),
			RowsDesktop: 1,
			RowsMobile:  1,
			ItemSpacing: 16,
			Autoplay:    Autoplay{Enabled: false, Interval: 5000, PauseOnHover: true},
			Navigation:  Navigation{Arrows: false, Dots: false, Swipe: true},
			Animation:   "slide",
			ScrollMode:  ScrollByItem,
		},
		Header: Header{
			Enabled:           true,
			Title:             "What our customers say",
			ShowRatingSummary: true,
			ShowReviewCount:   true,
			WriteReviewButton: WriteReviewButton{Enabled: true, Text: "Write a review"},
		},
		Reviews: ReviewFilter{
			MinRating:       4,
			MaxReviews:      AtMost(20),
			SortBy:          SortNewest,
			ShowWithoutText: false,
		},
		Style: Style{
			ColorScheme: SchemeLight,
			AccentColor: "#2563eb",
			CustomCSS:   "",
		},
		Settings: Settings{
			Language:      "en",
			AutoTranslate: false,
			ExternalLinks: ExternalLinks{Enabled: true, OpenInNewTab: true},
			Schema:        SchemaMarkup{Enabled: false},
		},
	}
}
