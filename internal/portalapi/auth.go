package portalapi

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

func registerAuthRoutes() {
	webserver.PubPOST("/register", register)
	webserver.PubPOST("/login", login)
	webserver.PubPOST("/logout", logout)
	webserver.PubGET("/user", currentUser)
}

type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func register(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse registration", nil)
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
	if len(payload.Name) < 2 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name must be at least 2 characters", nil)
	}
	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Must provide a valid email", nil)
	}

	var dup domain.User
	if err := GetDB(c).Where("username = ? OR email = ?", payload.Username, payload.Email).First(&dup).Error; err == nil {
		return fail(c, http.StatusConflict, "DUPLICATE_USER", "Username or email already registered", nil)
	}

	hashed, err := common.HashPassword(payload.Password)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create account", nil)
	}

	now := time.Now()
	user := domain.User{
		ID:        common.UUIDint64(),
		Username:  payload.Username,
		Password:  hashed,
		Name:      payload.Name,
		Email:     payload.Email,
		Role:      domain.RoleClient,
		LastLogin: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := GetDB(c).Create(&user).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create account", err.Error())
	}

	if err := webserver.CreateLoginSession(c, &user); err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to establish session", nil)
	}
	return created(c, user)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login", nil)
	}

	var user domain.User
	err := GetDB(c).Where("username = ?", strings.TrimSpace(payload.Username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !common.CheckPassword(user.Password, payload.Password)) {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query account", err.Error())
	}

	GetDB(c).Model(&domain.User{}).Where("id = ?", user.ID).Update("last_login", time.Now())

	if err := webserver.CreateLoginSession(c, &user); err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to establish session", nil)
	}
	return ok(c, user)
}

func logout(c echo.Context) error {
	if err := webserver.DestroyLoginSession(c); err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to destroy session", nil)
	}
	return ok(c, map[string]interface{}{"success": true})
}

func currentUser(c echo.Context) error {
	uid := webserver.SessionUserID(c)
	if uid == 0 {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
	}
	var user domain.User
	if err := GetDB(c).Where("id = ?", uid).First(&user).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session account no longer exists", nil)
	}
	return ok(c, user)
}
