package selection

import (
	"testing"
	"time"

	"reviewdash/models"
	"reviewdash/models/widgetcfg"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func rev(id uint, rating int, text string, pinned bool, age time.Duration) models.Review {
	r := models.Review{Rating: rating, Text: text, Pinned: pinned, ReviewedAt: base.Add(-age)}
	r.ID = id
	return r
}

func ids(reviews []models.Review) []uint {
	out := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.ID)
	}
	return out
}

func spec(minRating int, max widgetcfg.MaxReviews, sortBy widgetcfg.SortOrder, withoutText bool) widgetcfg.ReviewFilter {
	return widgetcfg.ReviewFilter{
		MinRating:       minRating,
		MaxReviews:      max,
		SortBy:          sortBy,
		ShowWithoutText: withoutText,
	}
}

func TestSelect_SingleReviewPassesThrough(t *testing.T) {
	in := []models.Review{rev(1, 5, "x", false, 0)}
	got := Select(in, spec(1, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), true)
	require.Equal(t, in, got)
}

func TestSelect_FiltersBelowMinRating(t *testing.T) {
	in := []models.Review{
		rev(1, 2, "meh", false, 0),
		rev(2, 5, "great", false, time.Hour),
	}
	got := Select(in, spec(3, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), true)
	require.Equal(t, []uint{2}, ids(got))
}

func TestSelect_TextlessReviewsNeedOptIn(t *testing.T) {
	in := []models.Review{
		rev(1, 5, "", false, 0),
		rev(2, 5, "words", false, time.Hour),
	}

	got := Select(in, spec(1, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), true)
	require.Equal(t, []uint{2}, ids(got))

	got = Select(in, spec(1, widgetcfg.AllReviews(), widgetcfg.SortNewest, true), true)
	require.Equal(t, []uint{1, 2}, ids(got))
}

func TestSelect_SortOrders(t *testing.T) {
	in := []models.Review{
		rev(1, 3, "a", false, 2*time.Hour),
		rev(2, 5, "b", false, 3*time.Hour),
		rev(3, 4, "c", false, time.Hour),
	}

	tests := []struct {
		sortBy widgetcfg.SortOrder
		want   []uint
	}{
		{widgetcfg.SortNewest, []uint{3, 1, 2}},
		{widgetcfg.SortHighest, []uint{2, 3, 1}},
		{widgetcfg.SortLowest, []uint{1, 3, 2}},
	}
	for _, tc := range tests {
		got := Select(in, spec(1, widgetcfg.AllReviews(), tc.sortBy, false), true)
		require.Equal(t, tc.want, ids(got), "sortBy=%s", tc.sortBy)
	}
}

func TestSelect_PinnedAlwaysFirst(t *testing.T) {
	in := []models.Review{
		rev(1, 5, "new and shiny", false, 0),
		rev(2, 3, "old but pinned", true, 100*time.Hour),
		rev(3, 4, "middle", false, 10*time.Hour),
	}

	for _, sortBy := range []widgetcfg.SortOrder{widgetcfg.SortNewest, widgetcfg.SortHighest, widgetcfg.SortLowest} {
		got := Select(in, spec(1, widgetcfg.AllReviews(), sortBy, false), true)
		require.Equal(t, uint(2), got[0].ID, "pinned must lead for sortBy=%s", sortBy)
	}

	// With pinnedFirst off the pin flag is ignored.
	got := Select(in, spec(1, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), false)
	require.Equal(t, []uint{1, 3, 2}, ids(got))
}

func TestSelect_StableOnTies(t *testing.T) {
	// Same rating, same pin status: input order must survive sorting.
	in := []models.Review{
		rev(1, 4, "first", false, time.Hour),
		rev(2, 4, "second", false, time.Hour),
		rev(3, 4, "third", false, time.Hour),
	}
	got := Select(in, spec(1, widgetcfg.AllReviews(), widgetcfg.SortHighest, false), true)
	require.Equal(t, []uint{1, 2, 3}, ids(got))
}

func TestSelect_CapsAtMaxReviews(t *testing.T) {
	in := []models.Review{
		rev(1, 5, "a", false, time.Hour),
		rev(2, 5, "b", false, 2*time.Hour),
		rev(3, 5, "c", false, 3*time.Hour),
	}

	got := Select(in, spec(1, widgetcfg.AtMost(2), widgetcfg.SortNewest, false), true)
	require.Len(t, got, 2)

	got = Select(in, spec(1, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), true)
	require.Len(t, got, 3)
}

func TestSelect_EmptyAndUnmatchableInputs(t *testing.T) {
	require.Empty(t, Select(nil, spec(1, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), true))

	in := []models.Review{rev(1, 3, "x", false, 0)}
	require.Empty(t, Select(in, spec(5, widgetcfg.AllReviews(), widgetcfg.SortNewest, false), true))
}

func TestSummarize(t *testing.T) {
	require.Nil(t, Summarize(nil))

	in := []models.Review{
		rev(1, 5, "a", false, 0),
		rev(2, 4, "b", false, 0),
		rev(3, 3, "", false, 0),
	}
	s := Summarize(in)
	require.NotNil(t, s)
	require.Equal(t, 3, s.TotalReviews)
	require.InDelta(t, 4.0, s.AvgRating, 1e-9)
}
