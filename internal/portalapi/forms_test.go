package portalapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func TestSubmitContact(t *testing.T) {
	env := setupServer(t)

	rec := request(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Anita Desai",
		"email":   "anita@example.in",
		"subject": "Rooftop enquiry",
		"message": "Looking for a 3kW rooftop system for my home.",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result submitResult
	decodeBody(t, rec, &result)
	assert.True(t, result.Success)
	assert.NotZero(t, result.ID)

	var stored domain.ContactSubmission
	require.NoError(t, env.app.DB().Where("id = ?", result.ID).First(&stored).Error)
	assert.False(t, stored.Viewed)
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	setupServer(t)

	rec := request(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Anita Desai",
		"email":   "not-an-email",
		"message": "Looking for a rooftop system.",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp webserver.ErrorResponse
	decodeBody(t, rec, &errResp)
	assert.Equal(t, "INVALID_REQUEST", errResp.Code)
}

func TestSubmitQuote(t *testing.T) {
	env := setupServer(t)

	rec := request(http.MethodPost, "/api/quote", map[string]string{
		"first_name": "Vikram",
		"last_name":  "Singh",
		"email":      "vikram@example.in",
		"phone":      "9876543210",
		"city":       "Jodhpur",
		"pincode":    "342001",
		"interested": "Solar Panels",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result submitResult
	decodeBody(t, rec, &result)
	require.True(t, result.Success)

	var stored domain.QuoteRequest
	require.NoError(t, env.app.DB().Where("id = ?", result.ID).First(&stored).Error)
	assert.Equal(t, "Jodhpur", stored.City)
}

func TestSubmitQuoteRequiresPhone(t *testing.T) {
	setupServer(t)

	rec := request(http.MethodPost, "/api/quote", map[string]string{
		"first_name": "Vikram",
		"last_name":  "Singh",
		"email":      "vikram@example.in",
		"phone":      "123",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitCalculator(t *testing.T) {
	env := setupServer(t)

	rec := request(http.MethodPost, "/api/calculator", map[string]interface{}{
		"monthly_bill":    4500.0,
		"location":        "Hyderabad",
		"system_size":     3.2,
		"system_cost":     192000.0,
		"monthly_savings": 3800.0,
		"annual_savings":  45600.0,
		"roi_period":      4.2,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result submitResult
	decodeBody(t, rec, &result)
	require.True(t, result.Success)

	var stored domain.CalculatorResult
	require.NoError(t, env.app.DB().Where("id = ?", result.ID).First(&stored).Error)
	assert.InDelta(t, 3.2, stored.SystemSize, 0.001)
}

func TestSubmitCalculatorRejectsZeroBill(t *testing.T) {
	setupServer(t)

	rec := request(http.MethodPost, "/api/calculator", map[string]interface{}{
		"monthly_bill": 0,
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
