package models

import (
	"time"
)

// Status is the review status of an application.
type Status string

const (
	// StatusPending is the status every new application starts in
	StatusPending Status = "Pending"
	// StatusReviewed indicates a recruiter has looked at the application
	StatusReviewed Status = "Reviewed"
	// StatusAccepted indicates the candidate moves forward
	StatusAccepted Status = "Accepted"
	// StatusRejected indicates the application was declined
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is one of the four review statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Positions are the open roles candidates can apply for.
var Positions = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"UI/UX Designer",
	"DevOps Engineer",
	"Data Scientist",
}

// Countries are the locations we currently hire from.
var Countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Australia",
	"Germany",
	"France",
	"Netherlands",
	"India",
	"Pakistan",
	"Singapore",
}

// ValidPosition reports whether p is one of the open roles.
func ValidPosition(p string) bool {
	return containsString(Positions, p)
}

// ValidCountry reports whether c is a supported country.
func ValidCountry(c string) bool {
	return containsString(Countries, c)
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Application is a submitted job application. The ID and AppliedAt are
// assigned by the server at creation; only Status mutates afterwards.
type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `json:"appliedAt"`

	FirstName  string `gorm:"not null" json:"firstName"`
	LastName   string `gorm:"not null" json:"lastName"`
	Email      string `gorm:"not null" json:"email"`
	Phone      string `gorm:"not null" json:"phone"`
	TaxID      string `gorm:"not null" json:"taxId"`
	Occupation string `gorm:"not null" json:"occupation"`

	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	Position string `gorm:"not null" json:"position"`

	// Evidence: hosted image URLs, empty until the upload finishes
	TaxIDImageURL   string `json:"taxIdImageUrl"`
	LicenseImageURL string `json:"licenseImageUrl"`

	Status Status `gorm:"type:text;default:'Pending'" json:"status"`
}
