package portalapi

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatech/solarportal/internal/domain"
)

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	products := []domain.Product{
		{Name: "Loom Solar Panel 440W", Category: "Solar Panels", Price: 24000, Featured: true},
		{Name: "SHINE 5kW Inverter", Category: "Inverters", Price: 85000},
		{Name: "Balcony Solar Kit", Category: "Solar Panels", Price: 32000, Featured: true},
	}
	for i := range products {
		require.NoError(t, env.app.DB().Create(&products[i]).Error)
	}
}

func TestListProductsByCategory(t *testing.T) {
	env := setupServer(t)
	seedCatalog(t, env)

	rec := request(http.MethodGet, "/api/products?category=Solar+Panels", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	decodeBody(t, rec, &products)
	assert.Len(t, products, 2)

	// "all" behaves the same as no filter
	rec = request(http.MethodGet, "/api/products?category=all", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &products)
	assert.Len(t, products, 3)
}

func TestListFeaturedProducts(t *testing.T) {
	env := setupServer(t)
	seedCatalog(t, env)

	rec := request(http.MethodGet, "/api/products/featured", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestGetProduct(t *testing.T) {
	env := setupServer(t)
	seedCatalog(t, env)

	var first domain.Product
	require.NoError(t, env.app.DB().Order("id").First(&first).Error)

	rec := request(http.MethodGet, fmt.Sprintf("/api/products/%d", first.ID), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product domain.Product
	decodeBody(t, rec, &product)
	assert.Equal(t, first.Name, product.Name)

	rec = request(http.MethodGet, "/api/products/999999", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSubsidiesByRegion(t *testing.T) {
	env := setupServer(t)
	expired := time.Now().Add(-24 * time.Hour)
	rows := []domain.Subsidy{
		{Title: "PM Surya Ghar", Region: "National", Active: true},
		{Title: "UP Rooftop Scheme", Region: "Uttar Pradesh", Active: true},
		{Title: "Gujarat Solar Policy", Region: "Gujarat", Active: true},
		{Title: "Closed Pilot", Region: "Uttar Pradesh", Active: true, ExpiryDate: &expired},
		{Title: "Suspended Scheme", Region: "National", Active: false},
	}
	for i := range rows {
		require.NoError(t, env.app.DB().Create(&rows[i]).Error)
	}

	rec := request(http.MethodGet, "/api/subsidies?region=Uttar+Pradesh", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var subsidies []domain.Subsidy
	decodeBody(t, rec, &subsidies)
	require.Len(t, subsidies, 2)
	titles := []string{subsidies[0].Title, subsidies[1].Title}
	assert.Contains(t, titles, "PM Surya Ghar")
	assert.Contains(t, titles, "UP Rooftop Scheme")

	// the path variant behaves the same
	rec = request(http.MethodGet, "/api/subsidies/region/Uttar%20Pradesh", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &subsidies)
	assert.Len(t, subsidies, 2)
}

func TestListSettingsFlattened(t *testing.T) {
	env := setupServer(t)
	require.NoError(t, env.app.DB().Create(&domain.SiteSetting{Key: "company_name", Value: "SuryaTech Solar"}).Error)
	require.NoError(t, env.app.DB().Create(&domain.SiteSetting{Key: "contact_phone", Value: "+91 98765 43210"}).Error)

	rec := request(http.MethodGet, "/api/settings", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var values map[string]string
	decodeBody(t, rec, &values)
	assert.Equal(t, "SuryaTech Solar", values["company_name"])
	assert.Equal(t, "+91 98765 43210", values["contact_phone"])
}
