package app

import (
	"errors"
	"strings"
	"time"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "solarportal"

	var operator domain.User
	err := a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashedPassword, herr := common.HashPassword(defaultPassword)
		if herr != nil {
			zap.L().Error("failed to hash default super admin password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.User{
			ID:        common.UUIDint64(),
			Username:  superUsername,
			Password:  hashedPassword,
			Name:      "Administrator",
			Email:     "admin@localhost",
			Role:      domain.RoleAdmin,
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	if strings.EqualFold(operator.Role, domain.RoleAdmin) {
		return
	}

	if err := a.gormDB.Model(&domain.User{}).Where("id = ?", operator.ID).Updates(map[string]interface{}{
		"role":       domain.RoleAdmin,
		"updated_at": time.Now(),
	}).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default super admin role", zap.String("username", superUsername))
}

func (a *Application) checkSettings() {
	defaultSettings := []domain.SiteSetting{
		{Sort: 1, Key: "company_name", Value: "BEE SOLAR POWERS", Remark: "Company display name"},
		{Sort: 2, Key: "company_tagline", Value: "Authorized Distributor: Loom Solar Pvt Ltd", Remark: "Tagline under the logo"},
		{Sort: 3, Key: "company_address", Value: "123 Solar Street, Green Park, New Delhi, 110016, India", Remark: "Postal address"},
		{Sort: 4, Key: "company_phone", Value: "+91 98765 43210", Remark: "Contact phone"},
		{Sort: 5, Key: "company_email", Value: "info@beesolarpower.com", Remark: "Contact email"},
		{Sort: 6, Key: "company_hours", Value: "Mon-Sat: 9AM to 6PM", Remark: "Opening hours"},
		{Sort: 7, Key: "social_facebook", Value: "#", Remark: "Facebook page URL"},
		{Sort: 8, Key: "social_twitter", Value: "#", Remark: "Twitter profile URL"},
		{Sort: 9, Key: "social_instagram", Value: "#", Remark: "Instagram profile URL"},
		{Sort: 10, Key: "social_linkedin", Value: "#", Remark: "LinkedIn page URL"},
		{Sort: 11, Key: "social_youtube", Value: "#", Remark: "YouTube channel URL"},
		{Sort: 12, Key: "map_location", Value: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d224345.83923192776!2d77.06889754725782!3d28.52758200617607", Remark: "Map embed URL"},
	}

	for _, s := range defaultSettings {
		var count int64
		a.gormDB.Model(&domain.SiteSetting{}).Where("key = ?", s.Key).Count(&count)
		if count == 0 {
			s.CreatedAt = time.Now()
			s.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&s).Error; err != nil {
				zap.L().Error("failed to create default setting", zap.String("key", s.Key), zap.Error(err))
			} else {
				zap.L().Info("initialized setting", zap.String("key", s.Key), zap.String("default", s.Value))
			}
		}
	}
}

// checkCategories initializes default catalog categories
func (a *Application) checkCategories() {
	defaultCategories := []domain.Category{
		{Name: "Solar Panels", Slug: "solar-panels"},
		{Name: "Inverters", Slug: "inverters"},
		{Name: "Batteries", Slug: "batteries"},
		{Name: "Complete Systems", Slug: "complete-systems"},
		{Name: "Accessories", Slug: "accessories"},
	}

	for _, cat := range defaultCategories {
		var count int64
		a.gormDB.Model(&domain.Category{}).Where("slug = ?", cat.Slug).Count(&count)
		if count == 0 {
			cat.CreatedAt = time.Now()
			if err := a.gormDB.Create(&cat).Error; err != nil {
				zap.L().Error("failed to create default category", zap.String("slug", cat.Slug), zap.Error(err))
			} else {
				zap.L().Info("initialized default category", zap.String("name", cat.Name))
			}
		}
	}
}

// checkProducts initializes default catalog products
func (a *Application) checkProducts() {
	fv := func(v float64) *float64 { return &v }
	defaultProducts := []domain.Product{
		{
			Name:          "Loom Solar Shark 550W Mono Panel",
			Description:   "High-efficiency monocrystalline panel with anti-reflective coating for maximum energy production.",
			Category:      "Solar Panels",
			Price:         24999, DiscountPrice: fv(27999), Rating: fv(4.9), Featured: true,
			ImageUrl: "https://images.unsplash.com/photo-1509391366360-2e959784a276?auto=format&fit=crop&w=600&q=80",
		},
		{
			Name:          "Loom Solar 3kW Hybrid Inverter",
			Description:   "Smart hybrid inverter with grid and battery support, featuring 98.2% efficiency and Wi-Fi monitoring.",
			Category:      "Inverters",
			Price:         38499, DiscountPrice: fv(41999), Rating: fv(4.8), Featured: true,
			ImageUrl: "https://images.unsplash.com/photo-1548075933-d9fc9cea6dc5?auto=format&fit=crop&w=600&q=80",
		},
		{
			Name:          "Loom Solar Li-ion 5kWh Battery",
			Description:   "Long-life lithium-ion battery with 10-year warranty, 95% depth of discharge, and compact design.",
			Category:      "Batteries",
			Price:         115999, DiscountPrice: fv(124999), Rating: fv(4.7), Featured: true,
			ImageUrl: "https://images.unsplash.com/photo-1584276433295-4b59fff8f591?auto=format&fit=crop&w=600&q=80",
		},
		{
			Name:          "Loom Solar 10kW Commercial System",
			Description:   "Complete commercial solar power system with panels, inverter, and mounting hardware for businesses.",
			Category:      "Complete Systems",
			Price:         750000, DiscountPrice: fv(790000), Rating: fv(4.9),
			ImageUrl: "https://images.unsplash.com/photo-1611365892117-bce37392ba03?auto=format&fit=crop&w=600&q=80",
		},
		{
			Name:          "Loom Solar Mounting Structure Kit",
			Description:   "High-quality aluminum and stainless steel mounting kit for secure installation of solar panels.",
			Category:      "Accessories",
			Price:         12999, DiscountPrice: fv(14999), Rating: fv(4.6),
			ImageUrl: "https://images.unsplash.com/photo-1545213156-0f5524058daa?auto=format&fit=crop&w=600&q=80",
		},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}
}

// checkTestimonials initializes default published testimonials
func (a *Application) checkTestimonials() {
	defaultTestimonials := []domain.Testimonial{
		{
			Name: "Rajesh Sharma", Location: "Delhi", Role: "Homeowner", Rating: 5,
			Content:   "The team was professional from start to finish. Our electricity bills have reduced by almost 80%!",
			AvatarUrl: "https://randomuser.me/api/portraits/men/32.jpg",
		},
		{
			Name: "Priya Patel", Location: "Mumbai", Role: "Business Owner", Rating: 5,
			Content:   "The solar system has significantly reduced our electricity expenses. The ROI has been better than expected.",
			AvatarUrl: "https://randomuser.me/api/portraits/women/44.jpg",
		},
		{
			Name: "Arun Verma", Location: "Bangalore", Role: "Apartment Complex", Rating: 5,
			Content:   "The installation was quick and clean. We're now enjoying free electricity during daylight hours!",
			AvatarUrl: "https://randomuser.me/api/portraits/men/68.jpg",
		},
	}

	var count int64
	a.gormDB.Model(&domain.Testimonial{}).Count(&count)
	if count > 0 {
		return
	}
	for _, tm := range defaultTestimonials {
		tm.CreatedAt = time.Now()
		if err := a.gormDB.Create(&tm).Error; err != nil {
			zap.L().Error("failed to create default testimonial", zap.String("name", tm.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized default testimonial", zap.String("name", tm.Name))
		}
	}
}
