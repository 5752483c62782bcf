package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a customer review synced from a location's provider. The widget
// engine reads these; only Pinned is ever mutated from the dashboard.
type Review struct {
	gorm.Model
	CompanyID       uint      `gorm:"not null;index" json:"companyId"`
	LocationID      uint      `gorm:"not null;index" json:"locationId"`
	ExternalID      string    `gorm:"index" json:"externalId"` // provider-side id, dedup key
	AuthorName      string    `gorm:"default:''" json:"authorName"`
	AuthorAvatarURL string    `gorm:"default:''" json:"authorAvatarUrl"`
	Rating          int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text            string    `gorm:"type:text;default:''" json:"text"`
	ReviewedAt      time.Time `gorm:"not null;index" json:"reviewedAt"`
	ReviewURL       string    `gorm:"default:''" json:"reviewUrl"`
	Pinned          bool      `gorm:"default:false" json:"pinned"`
	IsDeleted       bool      `gorm:"default:false" json:"isDeleted"`
}

func (Review) TableName() string {
	return "reviews"
}
