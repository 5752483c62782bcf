package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"reviewdash/config"
	"reviewdash/database"
	"reviewdash/models"

	"github.com/go-resty/resty/v2"
)

// providerReview is one review as the aggregation API returns it.
type providerReview struct {
	ID              string    `json:"id"`
	AuthorName      string    `json:"authorName"`
	AuthorAvatarURL string    `json:"authorAvatarUrl"`
	Rating          int       `json:"rating"`
	Text            string    `json:"text"`
	ReviewedAt      time.Time `json:"reviewedAt"`
	ReviewURL       string    `json:"reviewUrl"`
}

// fetchProviderReviews pulls the current review set for one place from the
// aggregation API.
func fetchProviderReviews(provider, placeID string) ([]providerReview, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.ReviewSyncApiKey).
		SetQueryParams(map[string]string{
			"provider": provider,
			"placeId":  placeID,
		}).
		Get(config.AppConfig.ReviewSyncApiURL + "reviews")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Review sync API returned %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("review sync API returned status %d", resp.StatusCode())
	}

	var payload struct {
		Reviews []providerReview `json:"reviews"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("invalid review sync response: %w", err)
	}
	return payload.Reviews, nil
}

// SyncLocation refreshes the stored reviews for one location. Reviews are
// deduped on the provider-side id, so re-running a sync is safe.
func SyncLocation(location models.Location) error {
	fetched, err := fetchProviderReviews(location.Provider, location.PlaceID)
	if err != nil {
		return err
	}

	db := database.Database.Db
	created, updated := 0, 0

	for _, pr := range fetched {
		if pr.Rating < 1 || pr.Rating > 5 || pr.ID == "" {
			continue
		}

		var existing models.Review
		err := db.Where("location_id = ? AND external_id = ?", location.ID, pr.ID).First(&existing).Error
		if err == nil {
			// Text and rating can change when the author edits the review
			res := db.Model(&existing).Updates(map[string]interface{}{
				"rating":     pr.Rating,
				"text":       pr.Text,
				"review_url": pr.ReviewURL,
				"is_deleted": false,
			})
			if res.Error != nil {
				return res.Error
			}
			updated++
			continue
		}

		review := models.Review{
			CompanyID:       location.CompanyID,
			LocationID:      location.ID,
			ExternalID:      pr.ID,
			AuthorName:      pr.AuthorName,
			AuthorAvatarURL: pr.AuthorAvatarURL,
			Rating:          pr.Rating,
			Text:            pr.Text,
			ReviewedAt:      pr.ReviewedAt,
			ReviewURL:       pr.ReviewURL,
		}
		if err := db.Create(&review).Error; err != nil {
			return err
		}
		created++
	}

	now := time.Now()
	if err := db.Model(&models.Location{}).Where("id = ?", location.ID).
		Update("last_synced_at", now).Error; err != nil {
		return err
	}

	log.Printf("Synced location %d (%s/%s): %d new, %d updated",
		location.ID, location.Provider, location.PlaceID, created, updated)
	return nil
}

// SyncAllLocations refreshes every location not synced within maxAge.
func SyncAllLocations(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)

	var locations []models.Location
	if err := database.Database.Db.
		Where("is_deleted = false AND (last_synced_at IS NULL OR last_synced_at < ?)", cutoff).
		Find(&locations).Error; err != nil {
		log.Printf("Failed to fetch locations for sync: %v", err)
		return
	}

	for _, location := range locations {
		if err := SyncLocation(location); err != nil {
			log.Printf("Review sync failed for location %d: %v", location.ID, err)
			notifySyncFailure(location)
		}
	}
}

// notifySyncFailure mails the company owner when a location stops syncing.
func notifySyncFailure(location models.Location) {
	var owner models.User
	err := database.Database.Db.
		Where("company_id = ? AND role = ? AND is_deleted = false", location.CompanyID, "OWNER").
		First(&owner).Error
	if err != nil || owner.Email == "" {
		return
	}

	label := location.Label
	if label == "" {
		label = location.PlaceID
	}
	SendSyncFailedEmail(owner.Email, owner.Name, label, location.Provider)
}
