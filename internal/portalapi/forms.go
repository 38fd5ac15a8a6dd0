package portalapi

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerFormRoutes() {
	webserver.PubPOST("/contact", submitContact)
	webserver.PubPOST("/quote", submitQuote)
	webserver.PubPOST("/calculator", submitCalculator)
}

type submitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func submitContact(c echo.Context) error {
	var sub domain.ContactSubmission
	if err := c.Bind(&sub); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse submission", nil)
	}
	sub.ID = 0
	sub.Viewed = false
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	if len(sub.Name) < 2 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name must be at least 2 characters", nil)
	}
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Must provide a valid email", nil)
	}
	if len(strings.TrimSpace(sub.Message)) < 10 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Message must be at least 10 characters", nil)
	}
	if err := GetDB(c).Create(&sub).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save submission", err.Error())
	}
	return created(c, submitResult{Success: true, Message: "Thank you for contacting us. We will get back to you shortly.", ID: sub.ID})
}

func submitQuote(c echo.Context) error {
	var req domain.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", nil)
	}
	req.ID = 0
	req.Viewed = false
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "First and last name are required", nil)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Must provide a valid email", nil)
	}
	if len(strings.TrimSpace(req.Phone)) < 10 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Must provide a valid phone number", nil)
	}
	if err := GetDB(c).Create(&req).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save request", err.Error())
	}
	return created(c, submitResult{Success: true, Message: "Quote request received. Our team will contact you within one business day.", ID: req.ID})
}

func submitCalculator(c echo.Context) error {
	var res domain.CalculatorResult
	if err := c.Bind(&res); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse result", nil)
	}
	res.ID = 0
	if res.MonthlyBill <= 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Monthly bill must be positive", nil)
	}
	if res.Email != "" {
		if _, err := mail.ParseAddress(res.Email); err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Must provide a valid email", nil)
		}
	}
	if err := GetDB(c).Create(&res).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save result", err.Error())
	}
	return created(c, submitResult{Success: true, Message: "Calculation saved.", ID: res.ID})
}
