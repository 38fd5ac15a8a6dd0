package adminapi

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

func GetDB(c echo.Context) *gorm.DB {
	return webserver.GetDB(c)
}

func ok(c echo.Context, data interface{}) error {
	return webserver.OK(c, data)
}

func created(c echo.Context, data interface{}) error {
	return webserver.Created(c, data)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return webserver.Fail(c, status, code, message, details)
}

func paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	return webserver.Paged(c, data, total, page, pageSize)
}

func parsePagination(c echo.Context) (page, pageSize int) {
	return webserver.ParsePagination(c)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return webserver.ParseIDParam(c, name)
}

// logOpr records an admin write operation in the audit log.
func logOpr(c echo.Context, action, format string, args ...interface{}) {
	log := domain.OprLog{
		ID:        common.UUIDint64(),
		OprName:   webserver.SessionUsername(c),
		OprIp:     c.RealIP(),
		OptAction: action,
		OptDesc:   fmt.Sprintf(format, args...),
		OptTime:   time.Now(),
	}
	if err := GetDB(c).Create(&log).Error; err != nil {
		zap.L().Error("failed to write operation log", zap.Error(err))
	}
}
