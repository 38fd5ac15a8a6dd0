package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerSettingRoutes() {
	webserver.ApiGET("/settings", adminListSettings)
	webserver.ApiPUT("/settings/:key", adminUpdateSetting)
	webserver.ApiGET("/oprlogs", adminListOprLogs)
}

func adminListSettings(c echo.Context) error {
	var rows []domain.SiteSetting
	if err := GetDB(c).Order("sort").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load settings", err.Error())
	}
	return ok(c, rows)
}

type settingPayload struct {
	Value  string `json:"value"`
	Remark string `json:"remark"`
}

// adminUpdateSetting upserts one setting by key. The in-memory settings
// cache picks the change up on its next scheduled reload.
func adminUpdateSetting(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Setting key is required", nil)
	}
	var payload settingPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse setting", nil)
	}

	var row domain.SiteSetting
	err := GetDB(c).Where("key = ?", key).First(&row).Error
	if err != nil {
		row = domain.SiteSetting{
			Key:       key,
			Value:     payload.Value,
			Remark:    payload.Remark,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := GetDB(c).Create(&row).Error; err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create setting", err.Error())
		}
	} else {
		row.Value = payload.Value
		if payload.Remark != "" {
			row.Remark = payload.Remark
		}
		row.UpdatedAt = time.Now()
		if err := GetDB(c).Save(&row).Error; err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update setting", err.Error())
		}
	}
	logOpr(c, "update setting", "setting %s", key)
	return ok(c, row)
}

func adminListOprLogs(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.OprLog{})
	if name := c.QueryParam("opr_name"); name != "" {
		query = query.Where("opr_name = ?", name)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count logs", err.Error())
	}
	var rows []domain.OprLog
	if err := query.Order("opt_time desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load logs", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}
