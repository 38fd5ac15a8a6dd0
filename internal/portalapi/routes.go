// Package portalapi implements the public marketing-site API and the
// customer-facing authenticated endpoints.
package portalapi

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/suryatech/solarportal/internal/webserver"
)

// InitRouter registers all public and customer routes
func InitRouter() {
	registerAuthRoutes()
	registerCatalogRoutes()
	registerContentRoutes()
	registerFormRoutes()
	registerInstallationRoutes()
}

// GetDB returns the request-scoped database handle
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

func parseIDParam(c echo.Context, name string) (int64, error) {
	return webserver.ParseIDParam(c, name)
}
