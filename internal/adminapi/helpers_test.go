package adminapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/suryatech/solarportal/config"
	"github.com/suryatech/solarportal/internal/app"
	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/portalapi"
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

const (
	testAdminPassword  = "admin-secret"
	testClientPassword = "client-secret"
)

type testEnv struct {
	app    *app.Application
	admin  *domain.User
	client *domain.User
}

// setupServer builds an in-memory application and registers both the
// portal and admin routers against a fresh Echo instance.
func setupServer(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:adminapi_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	application := app.NewApplication(config.DefaultAppConfig)
	application.OverrideDB(db)
	require.NoError(t, application.MigrateDB(false))

	webserver.Init(application)
	portalapi.InitRouter()
	InitRouter()

	env := &testEnv{app: application}
	env.admin = env.createUser(t, "admin", testAdminPassword, domain.RoleAdmin)
	env.client = env.createUser(t, "ramesh", testClientPassword, domain.RoleClient)
	return env
}

func (e *testEnv) createUser(t *testing.T, username, password, role string) *domain.User {
	t.Helper()
	hashed, err := common.HashPassword(password)
	require.NoError(t, err)
	user := &domain.User{
		ID:       common.UUIDint64(),
		Username: username,
		Password: hashed,
		Name:     username,
		Email:    username + "@example.in",
		Role:     role,
	}
	require.NoError(t, e.app.DB().Create(user).Error)
	return user
}

func (e *testEnv) createProduct(t *testing.T, name string) *domain.Product {
	t.Helper()
	product := &domain.Product{Name: name, Category: "Solar Panels", Price: 25000}
	require.NoError(t, e.app.DB().Create(product).Error)
	return product
}

// login performs a real login request and returns the session cookies.
func (e *testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set(echoContentType, echoJSON)
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

const (
	echoContentType = "Content-Type"
	echoJSON        = "application/json"
)

// request issues a JSON request with optional session cookies.
func request(method, target string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echoContentType, echoJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
