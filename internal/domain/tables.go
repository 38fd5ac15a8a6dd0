package domain

var Tables = []interface{}{
	// System
	&SiteSetting{},
	&OprLog{},
	// Accounts
	&User{},
	// Catalog
	&Product{},
	&Category{},
	&Testimonial{},
	&Subsidy{},
	// Lead capture
	&ContactSubmission{},
	&QuoteRequest{},
	&CalculatorResult{},
	// Installations
	&Installation{},
}
