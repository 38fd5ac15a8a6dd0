package portalapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupServer(t)

	rec := request(http.MethodPost, "/api/register", map[string]string{
		"username": "priya",
		"password": "secret123",
		"name":     "Priya Sharma",
		"email":    "priya@example.in",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user domain.User
	decodeBody(t, rec, &user)
	assert.Equal(t, domain.RoleClient, user.Role)

	// the response never carries the password hash
	assert.NotContains(t, rec.Body.String(), "password")

	var stored domain.User
	require.NoError(t, env.app.DB().Where("username = ?", "priya").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)

	// registration established a session
	cookies := rec.Result().Cookies()
	rec = request(http.MethodGet, "/api/user", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	// and a fresh login works too
	rec = request(http.MethodPost, "/api/login", map[string]string{
		"username": "priya",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	setupServer(t)

	cases := []map[string]string{
		{"username": "ab", "password": "secret123", "name": "Priya", "email": "p@example.in"},
		{"username": "priya", "password": "short", "name": "Priya", "email": "p@example.in"},
		{"username": "priya", "password": "secret123", "name": "P", "email": "p@example.in"},
		{"username": "priya", "password": "secret123", "name": "Priya", "email": "nope"},
	}
	for _, payload := range cases {
		rec := request(http.MethodPost, "/api/register", payload, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupServer(t)
	env.createUser(t, "priya", domain.RoleClient)

	rec := request(http.MethodPost, "/api/register", map[string]string{
		"username": "priya",
		"password": "secret123",
		"name":     "Priya Sharma",
		"email":    "other@example.in",
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	var errResp webserver.ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "DUPLICATE_USER", errResp.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupServer(t)
	env.createUser(t, "priya", domain.RoleClient)

	rec := request(http.MethodPost, "/api/login", map[string]string{
		"username": "priya",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(http.MethodPost, "/api/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	env := setupServer(t)
	env.createUser(t, "priya", domain.RoleClient)
	cookies := env.login(t, "priya")

	rec := request(http.MethodGet, "/api/user", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(http.MethodPost, "/api/logout", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	// the logout response carries the expired cookie
	rec = request(http.MethodGet, "/api/user", nil, rec.Result().Cookies())
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUserAnonymous(t *testing.T) {
	setupServer(t)

	rec := request(http.MethodGet, "/api/user", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
