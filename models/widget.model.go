package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Widget status enum values
const (
	WidgetStatusDraft     = "DRAFT"
	WidgetStatusPublished = "PUBLISHED"
)

// Widget owns one widget configuration. ConfigJSON is opaque at this layer;
// models/widgetcfg parses and defaults it.
type Widget struct {
	gorm.Model
	CompanyID  uint           `gorm:"not null;index" json:"companyId"`
	Name       string         `gorm:"not null" json:"name"`
	Type       string         `gorm:"not null;type:varchar(20)" json:"type"` // layout type the widget was created from
	Status     string         `gorm:"not null;default:'DRAFT';type:varchar(20)" json:"status"`
	PublicKey  string         `gorm:"uniqueIndex;not null" json:"publicKey"` // embed key, never the numeric id
	ConfigJSON datatypes.JSON `gorm:"type:jsonb" json:"configJson"`
	IsDeleted  bool           `gorm:"default:false" json:"isDeleted"`
}

func (Widget) TableName() string {
	return "widgets"
}
