package adminapi

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

func registerUserRoutes() {
	webserver.ApiGET("/users", adminListUsers)
	webserver.ApiGET("/users/:id", adminGetUser)
	webserver.ApiPOST("/users", adminCreateUser)
}

func adminListUsers(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.User{})
	if keyword := c.QueryParam("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("username like ? OR name like ? OR email like ?", like, like, like)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count users", err.Error())
	}
	var users []domain.User
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load users", err.Error())
	}
	return paged(c, users, total, page, pageSize)
}

func adminGetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid user id", nil)
	}
	var user domain.User
	if err := GetDB(c).Where("id = ?", id).First(&user).Error; err != nil {
		return fail(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found", nil)
	}
	return ok(c, user)
}

type adminUserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func adminCreateUser(c echo.Context) error {
	var payload adminUserPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse user", nil)
	}
	payload.Username = strings.TrimSpace(payload.Username)
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	if len(payload.Username) < 3 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username must be at least 3 characters", nil)
	}
	if len(payload.Password) < 6 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Password must be at least 6 characters", nil)
	}
	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Must provide a valid email", nil)
	}
	role := payload.Role
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleAdmin && role != domain.RoleClient {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Role must be admin or client", nil)
	}

	var dup domain.User
	if err := GetDB(c).Where("username = ? OR email = ?", payload.Username, payload.Email).First(&dup).Error; err == nil {
		return fail(c, http.StatusConflict, "DUPLICATE_USER", "Username or email already registered", nil)
	}

	hashed, err := common.HashPassword(payload.Password)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user", nil)
	}
	now := time.Now()
	user := domain.User{
		ID:        common.UUIDint64(),
		Username:  payload.Username,
		Password:  hashed,
		Name:      payload.Name,
		Email:     payload.Email,
		Role:      role,
		LastLogin: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := GetDB(c).Create(&user).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create user", err.Error())
	}
	logOpr(c, "create user", "user %d %s role %s", user.ID, user.Username, user.Role)
	return created(c, user)
}
