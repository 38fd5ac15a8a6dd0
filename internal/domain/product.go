package domain

import "time"

// Product represents a catalog item sold and installed by the distributor
type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"index" json:"name"`
	Description   string    `gorm:"size:2048" json:"description"`
	Category      string    `gorm:"index;size:64" json:"category"` // category name, see Category
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"` // original list price when discounted
	ImageUrl      string    `gorm:"size:1024" json:"image_url"`
	Rating        *float64  `json:"rating,omitempty"` // 0.0 - 5.0
	Featured      bool      `gorm:"index" json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "portal_product"
}

// Category groups catalog products
type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64" json:"name"`
	Slug      string    `gorm:"uniqueIndex;size:64" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "portal_category"
}
