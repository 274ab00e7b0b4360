package validation

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/ifrashafqat/job-portal/internal/dtos"
	"github.com/ifrashafqat/job-portal/internal/models"
)

// ValidateIntake is the server-side re-validation of a full payload. It
// runs the same rules as ValidateApplication and never trusts whatever the
// client claims to have checked. Evidence URLs stay optional here; when
// present they must be absolute http(s) URLs.
func ValidateIntake(req *dtos.ApplicationRequest) *Result {
	result := ValidateApplication(req)

	if v := strings.TrimSpace(req.TaxIDImageURL); v != "" && !validHTTPURL(v) {
		result.AddError("taxIdImageUrl", "Tax ID document URL is not a valid URL")
	}
	if v := strings.TrimSpace(req.LicenseImageURL); v != "" && !validHTTPURL(v) {
		result.AddError("licenseImageUrl", "License document URL is not a valid URL")
	}

	return result
}

func validHTTPURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizePhone canonicalizes an already-validated phone to E.164 when
// libphonenumber can parse it. Bare national numbers are parsed as US.
// Parsing failures keep the stripped digit form; enrichment never rejects.
func NormalizePhone(phone string) string {
	stripped := StripPhone(strings.TrimSpace(phone))

	region := "US"
	if strings.HasPrefix(stripped, "+") {
		region = ""
	}
	num, err := phonenumbers.Parse(stripped, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return stripped
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// BuildApplication assembles the record that gets persisted: every text
// field trimmed, email lower-cased, phone canonicalized. ID, AppliedAt and
// Status are left for the store to stamp.
func BuildApplication(req *dtos.ApplicationRequest) *models.Application {
	return &models.Application{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           NormalizePhone(req.Phone),
		TaxID:           strings.TrimSpace(req.TaxID),
		Occupation:      strings.TrimSpace(req.Occupation),
		Address:         strings.TrimSpace(req.Address),
		City:            strings.TrimSpace(req.City),
		State:           strings.TrimSpace(req.State),
		PostalCode:      strings.TrimSpace(req.PostalCode),
		Country:         strings.TrimSpace(req.Country),
		Position:        strings.TrimSpace(req.Position),
		TaxIDImageURL:   strings.TrimSpace(req.TaxIDImageURL),
		LicenseImageURL: strings.TrimSpace(req.LicenseImageURL),
	}
}
