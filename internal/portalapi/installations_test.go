package portalapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
	"github.com/suryatech/solarportal/pkg/common"
)

func seedInstallation(t *testing.T, env *testEnv, userId int64, status string) *domain.Installation {
	t.Helper()
	product := &domain.Product{Name: "Loom Solar Panel 440W", Category: "Solar Panels", Price: 25000}
	require.NoError(t, env.app.DB().Create(product).Error)
	row := &domain.Installation{
		ID:        common.UUIDint64(),
		UserId:    userId,
		ProductId: product.ID,
		Status:    status,
		Location:  "Varanasi, Uttar Pradesh",
	}
	require.NoError(t, env.app.DB().Create(row).Error)
	return row
}

func TestOwnerSeesProgressDetail(t *testing.T) {
	env := setupServer(t)
	owner := env.createUser(t, "sunita", domain.RoleClient)
	seedInstallation(t, env, owner.ID, "testing")
	cookies := env.login(t, "sunita")

	rec := request(http.MethodGet, fmt.Sprintf("/api/installations/user/%d", owner.ID), nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var views []installationView
	decodeBody(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, 90, views[0].Progress.Percent)
	assert.Equal(t, "Testing & Commissioning", views[0].Progress.Label)
	assert.Equal(t, 2, views[0].Progress.Tier)
	require.NotNil(t, views[0].Product)
	assert.Equal(t, "Loom Solar Panel 440W", views[0].Product.Name)
}

func TestUnknownStoredStatusDisplaysFailOpen(t *testing.T) {
	env := setupServer(t)
	owner := env.createUser(t, "mahesh", domain.RoleClient)
	row := seedInstallation(t, env, owner.ID, "completed")
	// simulate a legacy row written before status validation existed
	require.NoError(t, env.app.DB().Model(row).Update("status", "on_hold").Error)
	cookies := env.login(t, "mahesh")

	rec := request(http.MethodGet, fmt.Sprintf("/api/installations/user/%d", owner.ID), nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var views []installationView
	decodeBody(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, 0, views[0].Progress.Percent)
	assert.Equal(t, "Unknown Status", views[0].Progress.Label)
	assert.Equal(t, "bg-green-300", views[0].Progress.Color)
}

func TestCustomerCannotReadOtherCustomers(t *testing.T) {
	env := setupServer(t)
	owner := env.createUser(t, "sunita", domain.RoleClient)
	env.createUser(t, "rahul", domain.RoleClient)
	seedInstallation(t, env, owner.ID, "approved")
	cookies := env.login(t, "rahul")

	rec := request(http.MethodGet, fmt.Sprintf("/api/installations/user/%d", owner.ID), nil, cookies)
	require.Equal(t, http.StatusForbidden, rec.Code)
	var errResp webserver.ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "FORBIDDEN", errResp.Code)
}

func TestAdminCanReadAnyCustomer(t *testing.T) {
	env := setupServer(t)
	owner := env.createUser(t, "sunita", domain.RoleClient)
	env.createUser(t, "admin", domain.RoleAdmin)
	seedInstallation(t, env, owner.ID, "installing")
	cookies := env.login(t, "admin")

	rec := request(http.MethodGet, fmt.Sprintf("/api/installations/user/%d", owner.ID), nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var views []installationView
	decodeBody(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, 75, views[0].Progress.Percent)
}

func TestInstallationsRequireLogin(t *testing.T) {
	env := setupServer(t)
	owner := env.createUser(t, "sunita", domain.RoleClient)

	rec := request(http.MethodGet, fmt.Sprintf("/api/installations/user/%d", owner.ID), nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var errResp webserver.ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "UNAUTHORIZED", errResp.Code)
}
