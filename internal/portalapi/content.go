package portalapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerContentRoutes() {
	webserver.PubGET("/testimonials", listTestimonials)
	webserver.PubGET("/subsidies", listSubsidies)
	webserver.PubGET("/subsidies/region/:region", listSubsidiesByRegion)
	webserver.PubGET("/settings", listSettings)
	webserver.PubGET("/settings/:prefix", listSettingsByPrefix)
}

func listTestimonials(c echo.Context) error {
	var testimonials []domain.Testimonial
	if err := GetDB(c).Order("id").Find(&testimonials).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load testimonials", err.Error())
	}
	return ok(c, testimonials)
}

// listSubsidies returns active, unexpired subsidy programs, optionally
// filtered to a region plus the National programs.
func listSubsidies(c echo.Context) error {
	query := GetDB(c).Where("active = ?", true).
		Where("expiry_date IS NULL OR expiry_date > ?", time.Now())
	if region := c.QueryParam("region"); region != "" {
		query = query.Where("region = ? OR region = ?", region, "National")
	}
	var subsidies []domain.Subsidy
	if err := query.Order("id").Find(&subsidies).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load subsidies", err.Error())
	}
	return ok(c, subsidies)
}

func listSubsidiesByRegion(c echo.Context) error {
	region := c.Param("region")
	var subsidies []domain.Subsidy
	err := GetDB(c).Where("active = ?", true).
		Where("expiry_date IS NULL OR expiry_date > ?", time.Now()).
		Where("region = ? OR region = ?", region, "National").
		Order("id").Find(&subsidies).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load subsidies", err.Error())
	}
	return ok(c, subsidies)
}

// listSettings returns site settings flattened to a key/value map.
func listSettings(c echo.Context) error {
	var settings []domain.SiteSetting
	if err := GetDB(c).Order("sort").Find(&settings).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load settings", err.Error())
	}
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return ok(c, values)
}

// listSettingsByPrefix returns the subset of settings whose key starts
// with the given prefix, flattened like listSettings.
func listSettingsByPrefix(c echo.Context) error {
	prefix := c.Param("prefix")
	var settings []domain.SiteSetting
	if err := GetDB(c).Where("key like ?", prefix+"%").Order("sort").Find(&settings).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load settings", err.Error())
	}
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return ok(c, values)
}
