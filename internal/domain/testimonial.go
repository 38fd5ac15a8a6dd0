package domain

import "time"

// Testimonial is a published customer review
type Testimonial struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `json:"name" form:"name"`
	Location  string    `json:"location" form:"location"`
	Role      string    `gorm:"size:64" json:"role" form:"role"` // Homeowner, Business Owner, ...
	Content   string    `gorm:"size:4096" json:"content" form:"content"`
	Rating    int       `json:"rating" form:"rating"` // 1-5
	AvatarUrl string    `gorm:"size:1024" json:"avatar_url" form:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (Testimonial) TableName() string {
	return "portal_testimonial"
}
