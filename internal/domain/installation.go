package domain

import "time"

// Installation tracks one customer solar project from application to
// commissioning. Rows are created and mutated by administrators only;
// customers have read-only visibility into their own rows. There is no
// delete path: completed records stay on file.
type Installation struct {
	ID               int64      `json:"id,string" form:"id"`
	UserId           int64      `gorm:"index" json:"user_id,string" form:"user_id"`
	ProductId        int64      `gorm:"index" json:"product_id" form:"product_id"`
	Status           string     `gorm:"index;size:32" json:"status" form:"status"` // see internal/installation
	InstallationDate *time.Time `json:"installation_date,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	Notes            string     `gorm:"size:2048" json:"notes"` // latest admin update shown to the customer
	Location         string     `json:"location" form:"location"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (Installation) TableName() string {
	return "portal_installation"
}
