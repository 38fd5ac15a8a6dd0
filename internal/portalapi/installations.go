package portalapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/installation"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerInstallationRoutes() {
	webserver.AuthGET("/installations/user/:userId", listUserInstallations)
}

// installationView joins an installation row with its product and the
// progress metadata derived from the stored status.
type installationView struct {
	domain.Installation
	Product  *domain.Product       `json:"product,omitempty"`
	Progress installation.Progress `json:"progress"`
}

// listUserInstallations returns a customer's installations with progress
// detail. Customers may only read their own rows; admins may read any.
func listUserInstallations(c echo.Context) error {
	userId, err := parseIDParam(c, "userId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid user id", nil)
	}
	if webserver.SessionUserID(c) != userId && !webserver.IsAdminSession(c) {
		return fail(c, http.StatusForbidden, "FORBIDDEN", "Cannot view another customer's installations", nil)
	}

	var rows []domain.Installation
	if err := GetDB(c).Where("user_id = ?", userId).Order("created_at desc").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load installations", err.Error())
	}

	productIds := make([]int64, 0, len(rows))
	for _, row := range rows {
		productIds = append(productIds, row.ProductId)
	}
	products := map[int64]*domain.Product{}
	if len(productIds) > 0 {
		var list []domain.Product
		if err := GetDB(c).Where("id in ?", productIds).Find(&list).Error; err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load products", err.Error())
		}
		for i := range list {
			products[list[i].ID] = &list[i]
		}
	}

	views := make([]installationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, installationView{
			Installation: row,
			Product:      products[row.ProductId],
			Progress:     installation.ProgressFor(installation.Status(row.Status)),
		})
	}
	return ok(c, views)
}
