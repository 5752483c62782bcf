package models

import "gorm.io/gorm"

// Company is the tenant entity. Every location, review and widget hangs
// off a company.
type Company struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Website   string `gorm:"default:''" json:"website"`
	Plan      string `gorm:"default:'FREE';type:varchar(20)" json:"plan"` // FREE, PRO
	IsDeleted bool   `gorm:"default:false" json:"isDeleted"`

	Locations []Location `gorm:"foreignKey:CompanyID" json:"locations,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}
