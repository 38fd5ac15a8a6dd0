package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerTestimonialRoutes() {
	webserver.ApiPOST("/testimonials", adminCreateTestimonial)
	webserver.ApiPUT("/testimonials/:id", adminUpdateTestimonial)
	webserver.ApiDELETE("/testimonials/:id", adminDeleteTestimonial)
}

func validateTestimonial(t *domain.Testimonial) string {
	t.Name = strings.TrimSpace(t.Name)
	switch {
	case t.Name == "":
		return "Name is required"
	case t.Rating < 1 || t.Rating > 5:
		return "Rating must be between 1 and 5"
	case strings.TrimSpace(t.Content) == "":
		return "Content is required"
	}
	return ""
}

func adminCreateTestimonial(c echo.Context) error {
	var t domain.Testimonial
	if err := c.Bind(&t); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse testimonial", nil)
	}
	t.ID = 0
	if msg := validateTestimonial(&t); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	t.CreatedAt = time.Now()
	if err := GetDB(c).Create(&t).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create testimonial", err.Error())
	}
	logOpr(c, "create testimonial", "testimonial %d from %s", t.ID, t.Name)
	return created(c, t)
}

func adminUpdateTestimonial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid testimonial id", nil)
	}
	var existing domain.Testimonial
	if err := GetDB(c).Where("id = ?", id).First(&existing).Error; err != nil {
		return fail(c, http.StatusNotFound, "TESTIMONIAL_NOT_FOUND", "Testimonial not found", nil)
	}
	var t domain.Testimonial
	if err := c.Bind(&t); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse testimonial", nil)
	}
	if msg := validateTestimonial(&t); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	t.ID = id
	t.CreatedAt = existing.CreatedAt
	if err := GetDB(c).Save(&t).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update testimonial", err.Error())
	}
	logOpr(c, "update testimonial", "testimonial %d from %s", t.ID, t.Name)
	return ok(c, t)
}

func adminDeleteTestimonial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid testimonial id", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Testimonial{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete testimonial", err.Error())
	}
	logOpr(c, "delete testimonial", "testimonial %d", id)
	return ok(c, map[string]interface{}{"success": true})
}
