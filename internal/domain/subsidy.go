package domain

import "time"

// Subsidy describes a government incentive program shown on the site
type Subsidy struct {
	ID                    int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title                 string     `json:"title" form:"title"`
	Description           string     `gorm:"size:4096" json:"description" form:"description"`
	Eligibility           string     `gorm:"size:4096" json:"eligibility" form:"eligibility"`
	Amount                string     `json:"amount" form:"amount"`
	ApplicationProcess    string     `gorm:"size:4096" json:"application_process" form:"application_process"`
	DocumentationRequired string     `gorm:"size:4096" json:"documentation_required" form:"documentation_required"`
	Region                string     `gorm:"index;size:64" json:"region" form:"region"` // state name or "National"
	Active                bool       `gorm:"index" json:"active" form:"active"`
	ExpiryDate            *time.Time `json:"expiry_date,omitempty"`
	Source                string     `json:"source" form:"source"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (Subsidy) TableName() string {
	return "portal_subsidy"
}
