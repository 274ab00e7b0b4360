package dtos

import "github.com/ifrashafqat/job-portal/internal/models"

// ApplicationRequest is the intake payload. Required-field and format
// checks happen in the validation package so failures come back as a
// per-field list instead of a single binding error.
type ApplicationRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	TaxID      string `json:"taxId"`
	Occupation string `json:"occupation"`

	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	Position string `json:"position"`

	// Optional until the evidence upload finishes
	TaxIDImageURL   string `json:"taxIdImageUrl"`
	LicenseImageURL string `json:"licenseImageUrl"`
}

// StatusUpdateRequest is the body of a status change.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// APIResponse is the envelope every endpoint replies with.
type APIResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message,omitempty"`
	Data     any                 `json:"data,omitempty"`
	Error    string              `json:"error,omitempty"`
	Details  []models.FieldError `json:"details,omitempty"`
	Source   string              `json:"source,omitempty"`
	Degraded bool                `json:"degraded,omitempty"`
}
