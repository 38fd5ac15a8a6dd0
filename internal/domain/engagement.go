package domain

import "time"

// Lead-capture models: contact form, quote request, savings calculator.

// ContactSubmission is a message from the public contact form
type ContactSubmission struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `json:"name" form:"name"`
	Email     string    `gorm:"index" json:"email" form:"email"`
	Subject   string    `json:"subject" form:"subject"`
	Message   string    `gorm:"size:4096" json:"message" form:"message"`
	Viewed    bool      `gorm:"index" json:"viewed"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (ContactSubmission) TableName() string {
	return "portal_contact_submission"
}

// QuoteRequest is a request for a system quotation
type QuoteRequest struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `json:"first_name" form:"first_name"`
	LastName   string    `json:"last_name" form:"last_name"`
	Email      string    `gorm:"index" json:"email" form:"email"`
	Phone      string    `json:"phone" form:"phone"`
	Address    string    `json:"address" form:"address"`
	City       string    `json:"city" form:"city"`
	Pincode    string    `gorm:"size:16" json:"pincode" form:"pincode"`
	Interested string    `json:"interested" form:"interested"` // product line of interest
	Comments   string    `gorm:"size:4096" json:"comments" form:"comments"`
	Viewed     bool      `gorm:"index" json:"viewed"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName Specify table name
func (QuoteRequest) TableName() string {
	return "portal_quote_request"
}

// CalculatorResult is a saved savings-calculator run
type CalculatorResult struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MonthlyBill    float64   `json:"monthly_bill" form:"monthly_bill"`
	Location       string    `json:"location" form:"location"`
	SystemSize     float64   `json:"system_size" form:"system_size"` // kW
	SystemCost     float64   `json:"system_cost" form:"system_cost"`
	MonthlySavings float64   `json:"monthly_savings" form:"monthly_savings"`
	AnnualSavings  float64   `json:"annual_savings" form:"annual_savings"`
	RoiPeriod      float64   `json:"roi_period" form:"roi_period"` // years
	Email          string    `gorm:"index" json:"email" form:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName Specify table name
func (CalculatorResult) TableName() string {
	return "portal_calculator_result"
}
