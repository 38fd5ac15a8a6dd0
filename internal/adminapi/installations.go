package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/installation"
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

func registerInstallationRoutes() {
	webserver.ApiGET("/installations", listInstallations)
	webserver.ApiGET("/installations/:id", getInstallation)
	webserver.ApiPOST("/installations", createInstallation)
	webserver.ApiPATCH("/installations/:id", updateInstallation)
}

// adminInstallationView joins an installation row with its customer and
// product for the console list.
type adminInstallationView struct {
	domain.Installation
	Customer string `json:"customer"`
	Product  string `json:"product"`
}

func listInstallations(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.Installation{})
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if uid := c.QueryParam("user_id"); uid != "" {
		query = query.Where("user_id = ?", uid)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count installations", err.Error())
	}
	var rows []domain.Installation
	if err := query.Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load installations", err.Error())
	}

	userIds := make([]int64, 0, len(rows))
	productIds := make([]int64, 0, len(rows))
	for _, row := range rows {
		userIds = append(userIds, row.UserId)
		productIds = append(productIds, row.ProductId)
	}
	userNames := map[int64]string{}
	productNames := map[int64]string{}
	if len(rows) > 0 {
		var users []domain.User
		GetDB(c).Where("id in ?", userIds).Find(&users)
		for _, u := range users {
			userNames[u.ID] = u.Name
		}
		var products []domain.Product
		GetDB(c).Where("id in ?", productIds).Find(&products)
		for _, p := range products {
			productNames[p.ID] = p.Name
		}
	}

	views := make([]adminInstallationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, adminInstallationView{
			Installation: row,
			Customer:     userNames[row.UserId],
			Product:      productNames[row.ProductId],
		})
	}
	return paged(c, views, total, page, pageSize)
}

func getInstallation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid installation id", nil)
	}
	var row domain.Installation
	if err := GetDB(c).Where("id = ?", id).First(&row).Error; err != nil {
		return fail(c, http.StatusNotFound, "INSTALLATION_NOT_FOUND", "Installation not found", nil)
	}
	return ok(c, row)
}

type installationCreatePayload struct {
	UserId           int64  `json:"user_id,string"`
	ProductId        int64  `json:"product_id"`
	Status           string `json:"status"`
	InstallationDate string `json:"installation_date"`
	Notes            string `json:"notes"`
	Location         string `json:"location"`
}

func createInstallation(c echo.Context) error {
	var payload installationCreatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse installation", nil)
	}
	payload.Location = strings.TrimSpace(payload.Location)
	if payload.UserId == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id is required", nil)
	}
	if payload.ProductId == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "product_id is required", nil)
	}
	if len(payload.Location) < 3 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Location must be at least 3 characters", nil)
	}

	status := installation.Default
	if payload.Status != "" {
		parsed, err := installation.Parse(payload.Status)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_STATUS", err.Error(), nil)
		}
		status = parsed
	}

	var user domain.User
	if err := GetDB(c).Where("id = ?", payload.UserId).First(&user).Error; err != nil {
		return fail(c, http.StatusNotFound, "USER_NOT_FOUND", "Customer account not found", nil)
	}
	var product domain.Product
	if err := GetDB(c).Where("id = ?", payload.ProductId).First(&product).Error; err != nil {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", nil)
	}

	now := time.Now()
	row := domain.Installation{
		ID:        common.UUIDint64(),
		UserId:    payload.UserId,
		ProductId: payload.ProductId,
		Status:    string(status),
		Notes:     payload.Notes,
		Location:  payload.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payload.InstallationDate != "" {
		date, err := dateparse.ParseAny(payload.InstallationDate)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse installation_date", nil)
		}
		row.InstallationDate = &date
	}
	if err := GetDB(c).Create(&row).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create installation", err.Error())
	}
	logOpr(c, "create installation", "installation %d for user %s (%s)", row.ID, user.Username, row.Status)
	return created(c, row)
}

type installationUpdatePayload struct {
	ProductId        *int64  `json:"product_id"`
	Status           *string `json:"status"`
	InstallationDate *string `json:"installation_date"`
	CompletionDate   *string `json:"completion_date"`
	Notes            *string `json:"notes"`
	Location         *string `json:"location"`
}

// updateInstallation applies a partial update. An invalid status rejects
// the whole request; nothing is written.
func updateInstallation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid installation id", nil)
	}
	var row domain.Installation
	if err := GetDB(c).Where("id = ?", id).First(&row).Error; err != nil {
		return fail(c, http.StatusNotFound, "INSTALLATION_NOT_FOUND", "Installation not found", nil)
	}

	var payload installationUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse update", nil)
	}

	values := map[string]interface{}{}
	if payload.Status != nil {
		parsed, err := installation.Parse(*payload.Status)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_STATUS", err.Error(), nil)
		}
		values["status"] = string(parsed)
	}
	if payload.ProductId != nil {
		var product domain.Product
		if err := GetDB(c).Where("id = ?", *payload.ProductId).First(&product).Error; err != nil {
			return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", nil)
		}
		values["product_id"] = *payload.ProductId
	}
	if payload.InstallationDate != nil {
		if *payload.InstallationDate == "" {
			values["installation_date"] = nil
		} else {
			date, err := dateparse.ParseAny(*payload.InstallationDate)
			if err != nil {
				return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse installation_date", nil)
			}
			values["installation_date"] = date
		}
	}
	if payload.CompletionDate != nil {
		if *payload.CompletionDate == "" {
			values["completion_date"] = nil
		} else {
			date, err := dateparse.ParseAny(*payload.CompletionDate)
			if err != nil {
				return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse completion_date", nil)
			}
			values["completion_date"] = date
		}
	}
	if payload.Notes != nil {
		values["notes"] = *payload.Notes
	}
	if payload.Location != nil {
		loc := strings.TrimSpace(*payload.Location)
		if len(loc) < 3 {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Location must be at least 3 characters", nil)
		}
		values["location"] = loc
	}
	if len(values) == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No updatable fields supplied", nil)
	}
	values["updated_at"] = time.Now()

	if err := GetDB(c).Model(&domain.Installation{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update installation", err.Error())
	}
	GetDB(c).Where("id = ?", id).First(&row)
	logOpr(c, "update installation", "installation %d (%s)", row.ID, row.Status)
	return ok(c, row)
}
