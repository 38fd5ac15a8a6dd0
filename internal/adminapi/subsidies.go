package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerSubsidyRoutes() {
	webserver.ApiGET("/subsidies", adminListSubsidies)
	webserver.ApiPOST("/subsidies", adminCreateSubsidy)
	webserver.ApiPUT("/subsidies/:id", adminUpdateSubsidy)
	webserver.ApiDELETE("/subsidies/:id", adminDeleteSubsidy)
}

func adminListSubsidies(c echo.Context) error {
	query := GetDB(c).Model(&domain.Subsidy{})
	if region := c.QueryParam("region"); region != "" {
		query = query.Where("region = ?", region)
	}
	var rows []domain.Subsidy
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load subsidies", err.Error())
	}
	return ok(c, rows)
}

type subsidyPayload struct {
	domain.Subsidy
	Expiry string `json:"expiry"` // free-form date, parsed on write
}

func (p *subsidyPayload) normalize() string {
	p.Title = strings.TrimSpace(p.Title)
	p.Region = strings.TrimSpace(p.Region)
	if p.Title == "" {
		return "Title is required"
	}
	if p.Region == "" {
		return "Region is required"
	}
	if p.Expiry != "" {
		date, err := dateparse.ParseAny(p.Expiry)
		if err != nil {
			return "Unable to parse expiry date"
		}
		p.ExpiryDate = &date
	}
	return ""
}

func adminCreateSubsidy(c echo.Context) error {
	var payload subsidyPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse subsidy", nil)
	}
	if msg := payload.normalize(); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	row := payload.Subsidy
	row.ID = 0
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	if err := GetDB(c).Create(&row).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create subsidy", err.Error())
	}
	logOpr(c, "create subsidy", "subsidy %d %s", row.ID, row.Title)
	return created(c, row)
}

func adminUpdateSubsidy(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid subsidy id", nil)
	}
	var existing domain.Subsidy
	if err := GetDB(c).Where("id = ?", id).First(&existing).Error; err != nil {
		return fail(c, http.StatusNotFound, "SUBSIDY_NOT_FOUND", "Subsidy not found", nil)
	}
	var payload subsidyPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse subsidy", nil)
	}
	if msg := payload.normalize(); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	row := payload.Subsidy
	row.ID = id
	row.CreatedAt = existing.CreatedAt
	row.UpdatedAt = time.Now()
	if err := GetDB(c).Save(&row).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update subsidy", err.Error())
	}
	logOpr(c, "update subsidy", "subsidy %d %s", row.ID, row.Title)
	return ok(c, row)
}

func adminDeleteSubsidy(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid subsidy id", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Subsidy{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete subsidy", err.Error())
	}
	logOpr(c, "delete subsidy", "subsidy %d", id)
	return ok(c, map[string]interface{}{"success": true})
}
