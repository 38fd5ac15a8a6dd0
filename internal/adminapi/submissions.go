package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

// Inboxes for public form submissions: contact messages, quote requests
// and saved calculator runs.

func registerSubmissionRoutes() {
	webserver.ApiGET("/contacts", adminListContacts)
	webserver.ApiPATCH("/contacts/:id/viewed", adminMarkContactViewed)
	webserver.ApiGET("/quotes", adminListQuotes)
	webserver.ApiPATCH("/quotes/:id/viewed", adminMarkQuoteViewed)
	webserver.ApiGET("/calculator-results", adminListCalculatorResults)
}

func adminListContacts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.ContactSubmission{})
	if c.QueryParam("unviewed") == "true" {
		query = query.Where("viewed = ?", false)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count submissions", err.Error())
	}
	var rows []domain.ContactSubmission
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load submissions", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func adminMarkContactViewed(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid submission id", nil)
	}
	result := GetDB(c).Model(&domain.ContactSubmission{}).Where("id = ?", id).Update("viewed", true)
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update submission", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "SUBMISSION_NOT_FOUND", "Submission not found", nil)
	}
	return ok(c, map[string]interface{}{"success": true})
}

func adminListQuotes(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.QuoteRequest{})
	if c.QueryParam("unviewed") == "true" {
		query = query.Where("viewed = ?", false)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count requests", err.Error())
	}
	var rows []domain.QuoteRequest
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load requests", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func adminMarkQuoteViewed(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request id", nil)
	}
	result := GetDB(c).Model(&domain.QuoteRequest{}).Where("id = ?", id).Update("viewed", true)
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update request", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "REQUEST_NOT_FOUND", "Quote request not found", nil)
	}
	return ok(c, map[string]interface{}{"success": true})
}

func adminListCalculatorResults(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.CalculatorResult{})
	if email := c.QueryParam("email"); email != "" {
		query = query.Where("email = ?", email)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count results", err.Error())
	}
	var rows []domain.CalculatorResult
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load results", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}
