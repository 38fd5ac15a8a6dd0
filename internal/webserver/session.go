package webserver

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
)

const (
	sessionName   = "solarportal_session"
	sessionMaxAge = 30 * 24 * 60 * 60 // 30 days

	sessKeyUserID   = "user_id"
	sessKeyUsername = "username"
	sessKeyRole     = "role"
)

// CreateLoginSession writes the login cookie for an authenticated user.
func CreateLoginSession(c echo.Context, user *domain.User) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[sessKeyUserID] = user.ID
	sess.Values[sessKeyUsername] = user.Username
	sess.Values[sessKeyRole] = user.Role
	return sess.Save(c.Request(), c.Response())
}

// DestroyLoginSession expires the login cookie.
func DestroyLoginSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1, HttpOnly: true}
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(c.Request(), c.Response())
}

// SessionUserID returns the logged-in user id, 0 when anonymous.
func SessionUserID(c echo.Context) int64 {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return 0
	}
	if v, ok := sess.Values[sessKeyUserID].(int64); ok {
		return v
	}
	return 0
}

// SessionUsername returns the logged-in username, empty when anonymous.
func SessionUsername(c echo.Context) string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return ""
	}
	if v, ok := sess.Values[sessKeyUsername].(string); ok {
		return v
	}
	return ""
}

// SessionRole returns the logged-in user role, empty when anonymous.
func SessionRole(c echo.Context) string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return ""
	}
	if v, ok := sess.Values[sessKeyRole].(string); ok {
		return v
	}
	return ""
}

// IsAdminSession reports whether the current session carries the admin role.
func IsAdminSession(c echo.Context) bool {
	return SessionRole(c) == domain.RoleAdmin
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if SessionUserID(c) == 0 {
			return Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		}
		return next(c)
	}
}

// RequireAdmin rejects non-admin sessions with 403.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdminSession(c) {
			return Fail(c, http.StatusForbidden, "FORBIDDEN", "Administrator access required", nil)
		}
		return next(c)
	}
}
