// Package selection is the pure filter/sort pipeline between collected
// reviews and the renderer. No I/O, no state.
package selection

import (
	"sort"

	"reviewdash/models"
	"reviewdash/models/widgetcfg"
)

// Summary is the aggregate shown in badge widgets and header blocks.
type Summary struct {
	AvgRating    float64 `json:"avgRating"`
	TotalReviews int     `json:"totalReviews"`
}

// Select filters, orders and caps reviews according to the widget's
// filter/sort spec. The sort is stable: ties keep their input order, and
// with pinnedFirst set, pinned reviews precede unpinned ones regardless of
// the sort order.
func Select(reviews []models.Review, spec widgetcfg.ReviewFilter, pinnedFirst bool) []models.Review {
	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Rating < spec.MinRating {
			continue
		}
		if r.Text == "" && !spec.ShowWithoutText {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if pinnedFirst && a.Pinned != b.Pinned {
			return a.Pinned
		}
		switch spec.SortBy {
		case widgetcfg.SortHighest:
			return a.Rating > b.Rating
		case widgetcfg.SortLowest:
			return a.Rating < b.Rating
		default: // newest
			return a.ReviewedAt.After(b.ReviewedAt)
		}
	})

	if !spec.MaxReviews.All && len(out) > spec.MaxReviews.N {
		out = out[:spec.MaxReviews.N]
	}
	return out
}

// Summarize computes the aggregate over the full (unfiltered) review set.
// Returns nil when there are no reviews.
func Summarize(reviews []models.Review) *Summary {
	if len(reviews) == 0 {
		return nil
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return &Summary{
		AvgRating:    float64(total) / float64(len(reviews)),
		TotalReviews: len(reviews),
	}
}
