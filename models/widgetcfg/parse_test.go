package widgetcfg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInputYieldsCarouselDefaults(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("null"), []byte("{}")} {
		cfg, err := Parse(raw)
		require.NoError(t, err)
		require.Equal(t, Template("carousel"), cfg)
	}
}

func TestParse_BackfillsFromMatchingTemplate(t *testing.T) {
	cfg, err := Parse([]byte(`{"layout":{"type":"grid","columns":2}}`))
	require.NoError(t, err)

	require.Equal(t, LayoutGrid, cfg.Layout.Type)
	require.Equal(t, FixedColumns(2), cfg.Layout.Columns)
	// Everything untouched comes from the grid template.
	require.Equal(t, 3, cfg.Layout.RowsDesktop)
	require.Equal(t, 4, cfg.Reviews.MinRating)
	require.Equal(t, SchemeLight, cfg.Style.ColorScheme)
	require.True(t, cfg.Header.Enabled)
}

func TestParse_UnknownLayoutTypeFallsBackToCarousel(t *testing.T) {
	cfg, err := Parse([]byte(`{"layout":{"type":"hexagon"}}`))
	require.NoError(t, err)
	require.Equal(t, LayoutCarousel, cfg.Layout.Type)
}

func TestParse_WrongTypeIsRejectedWithFieldPath(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"layout type number", `{"layout":{"type":3}}`, "layout.type"},
		{"header enabled string", `{"header":{"enabled":"yes"}}`, "header.enabled"},
		{"min rating string", `{"reviews":{"minRating":"four"}}`, "reviews.minRating"},
		{"max reviews bogus string", `{"reviews":{"maxReviews":"some"}}`, "reviews.maxReviews"},
		{"max reviews zero", `{"reviews":{"maxReviews":0}}`, "reviews.maxReviews"},
		{"columns negative", `{"layout":{"columns":-2}}`, "layout.columns"},
		{"width bogus string", `{"layout":{"width":"wide"}}`, "layout.width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestParse_UnrecognizedEnumStringsAreDefaulted(t *testing.T) {
	cfg, err := Parse([]byte(`{"reviews":{"sortBy":"rating"},"style":{"colorScheme":"sepia"}}`))
	require.NoError(t, err)
	require.Equal(t, SortNewest, cfg.Reviews.SortBy)
	require.Equal(t, SchemeLight, cfg.Style.ColorScheme)
}

func TestParse_Sentinels(t *testing.T) {
	cfg, err := Parse([]byte(`{"layout":{"width":"responsive","columns":"auto"},"reviews":{"maxReviews":"all"}}`))
	require.NoError(t, err)
	require.True(t, cfg.Layout.Width.Responsive)
	require.True(t, cfg.Layout.Columns.Auto)
	require.True(t, cfg.Reviews.MaxReviews.All)

	cfg, err = Parse([]byte(`{"layout":{"width":480,"columns":2},"reviews":{"maxReviews":12}}`))
	require.NoError(t, err)
	require.Equal(t, FixedWidth(480), cfg.Layout.Width)
	require.Equal(t, FixedColumns(2), cfg.Layout.Columns)
	require.Equal(t, AtMost(12), cfg.Reviews.MaxReviews)
}

func TestParse_MinRatingClamps(t *testing.T) {
	cfg, err := Parse([]byte(`{"reviews":{"minRating":0}}`))
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Reviews.MinRating)

	cfg, err = Parse([]byte(`{"reviews":{"minRating":9}}`))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Reviews.MinRating)
}

func TestParse_PreservesSources(t *testing.T) {
	cfg, err := Parse([]byte(`{"source":[{"provider":"GOOGLE","placeId":"abc","label":"HQ"}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 1)
	require.Equal(t, "GOOGLE", cfg.Sources[0].Provider)

	// An explicitly empty source list stays empty (valid, yields no reviews).
	cfg, err = Parse([]byte(`{"source":[]}`))
	require.NoError(t, err)
	require.Empty(t, cfg.Sources)
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"layout":{"type":"badge"}}`,
		`{"layout":{"type":"grid","columns":2,"width":600},"reviews":{"minRating":2,"maxReviews":"all","sortBy":"lowest","showWithoutText":true},"style":{"colorScheme":"dark","accentColor":"#ff0000","customCss":".rw{color:red}"}}`,
		`{"header":{"enabled":false},"settings":{"language":"de","schema":{"enabled":true}}}`,
	}

	for _, in := range inputs {
		first, err := Parse([]byte(in))
		require.NoError(t, err)

		serialized, err := json.Marshal(first)
		require.NoError(t, err)

		second, err := Parse(serialized)
		require.NoError(t, err)
		require.Equal(t, first, second, "Parse must be idempotent for %s", in)
	}
}

func TestTemplate_BadgeSelection(t *testing.T) {
	draft := Template("badge")
	serialized, err := json.Marshal(draft)
	require.NoError(t, err)

	cfg, err := Parse(serialized)
	require.NoError(t, err)
	require.Equal(t, LayoutBadge, cfg.Layout.Type)
	require.False(t, cfg.Header.Enabled)
	require.True(t, cfg.Settings.Schema.Enabled)
}

func TestTemplate_UnknownNameFallsBack(t *testing.T) {
	require.Equal(t, LayoutCarousel, Template("whatever").Layout.Type)
	require.Equal(t, LayoutCarousel, Template("").Layout.Type)
}
