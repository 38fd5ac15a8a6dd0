package portalapi

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
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

const testPassword = "portal-secret"

type testEnv struct {
	app *app.Application
}

func setupServer(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:portalapi_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	application := app.NewApplication(config.DefaultAppConfig)
	application.OverrideDB(db)
	require.NoError(t, application.MigrateDB(false))

	webserver.Init(application)
	InitRouter()
	return &testEnv{app: application}
}

func (e *testEnv) createUser(t *testing.T, username, role string) *domain.User {
	t.Helper()
	hashed, err := common.HashPassword(testPassword)
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

func (e *testEnv) login(t *testing.T, username string) []*http.Cookie {
	t.Helper()
	rec := request(http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": testPassword}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

func request(method, target string, payload interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
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
