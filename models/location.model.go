package models

import (
	"time"

	"gorm.io/gorm"
)

// Review source providers
const (
	ProviderGoogle   = "GOOGLE"
	ProviderFacebook = "FACEBOOK"
	ProviderYelp     = "YELP"
)

// Location is a review source for a company: one physical/virtual place on
// one provider, identified by the provider's place id.
type Location struct {
	gorm.Model
	CompanyID      uint       `gorm:"not null;index" json:"companyId"`
	Provider       string     `gorm:"not null;type:varchar(20)" json:"provider"` // GOOGLE, FACEBOOK, YELP
	PlaceID        string     `gorm:"not null" json:"placeId"`
	Label          string     `gorm:"default:''" json:"label"`
	WriteReviewURL string     `gorm:"default:''" json:"writeReviewUrl"` // provider page for leaving a review
	LastSyncedAt   *time.Time `json:"lastSyncedAt"`
	IsDeleted      bool       `gorm:"default:false" json:"isDeleted"`
}

func (Location) TableName() string {
	return "locations"
}
