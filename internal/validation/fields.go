package validation

import (
	"regexp"
	"strings"

	"github.com/ifrashafqat/job-portal/internal/dtos"
	"github.com/ifrashafqat/job-portal/internal/models"
)

var (
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex      = regexp.MustCompile(`^\+?[1-9]\d{9,15}$`)
	taxIDRegex      = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	postalCodeRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	phoneSeparators = strings.NewReplacer(" ", "", "(", "", ")", "", "-", "")
)

// Result collects field-level failures in form order. The first entry is
// the field the caller should focus.
type Result struct {
	Valid  bool
	Errors []models.FieldError
}

// NewResult creates an empty, valid result.
func NewResult() *Result {
	return &Result{Valid: true}
}

// AddError records a failure for a field and marks the result invalid.
func (r *Result) AddError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, models.FieldError{Field: field, Message: message})
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(v string) (bool, string) {
	if !emailRegex.MatchString(v) {
		return false, "Invalid email format"
	}
	return true, ""
}

// StripPhone removes the separators callers are allowed to type.
func StripPhone(v string) string {
	return phoneSeparators.Replace(v)
}

// ValidatePhone strips separators and checks for at least 10 digits with
// an optional leading +.
func ValidatePhone(v string) (bool, string) {
	if !phoneRegex.MatchString(StripPhone(v)) {
		return false, "Phone number must have at least 10 digits"
	}
	return true, ""
}

// ValidateTaxID requires the exact DDD-DD-DDDD form.
func ValidateTaxID(v string) (bool, string) {
	if !taxIDRegex.MatchString(v) {
		return false, "Tax ID must be in format 123-45-6789"
	}
	return true, ""
}

// ValidatePostalCode requires DDDDD or DDDDD-DDDD.
func ValidatePostalCode(v string) (bool, string) {
	if !postalCodeRegex.MatchString(v) {
		return false, "Postal code must be in format 12345 or 12345-6789"
	}
	return true, ""
}

// ValidatePosition checks membership in the open-roles set.
func ValidatePosition(v string) (bool, string) {
	if !models.ValidPosition(v) {
		return false, "Invalid role selected"
	}
	return true, ""
}

// ValidateCountry checks membership in the supported-countries set.
func ValidateCountry(v string) (bool, string) {
	if !models.ValidCountry(v) {
		return false, "Invalid country selected"
	}
	return true, ""
}

// formFields lists every non-evidence field in form order, with the format
// rule that applies once the field is present. Evidence URLs are
// deliberately absent.
var formFields = []struct {
	name  string
	value func(*dtos.ApplicationRequest) string
	label string
	check func(string) (bool, string)
}{
	{"firstName", func(r *dtos.ApplicationRequest) string { return r.FirstName }, "First name", nil},
	{"lastName", func(r *dtos.ApplicationRequest) string { return r.LastName }, "Last name", nil},
	{"email", func(r *dtos.ApplicationRequest) string { return r.Email }, "Email", ValidateEmail},
	{"phone", func(r *dtos.ApplicationRequest) string { return r.Phone }, "Phone", ValidatePhone},
	{"taxId", func(r *dtos.ApplicationRequest) string { return r.TaxID }, "Tax ID", ValidateTaxID},
	{"occupation", func(r *dtos.ApplicationRequest) string { return r.Occupation }, "Occupation", nil},
	{"address", func(r *dtos.ApplicationRequest) string { return r.Address }, "Address", nil},
	{"city", func(r *dtos.ApplicationRequest) string { return r.City }, "City", nil},
	{"state", func(r *dtos.ApplicationRequest) string { return r.State }, "State", nil},
	{"postalCode", func(r *dtos.ApplicationRequest) string { return r.PostalCode }, "Postal code", ValidatePostalCode},
	{"country", func(r *dtos.ApplicationRequest) string { return r.Country }, "Country", ValidateCountry},
	{"position", func(r *dtos.ApplicationRequest) string { return r.Position }, "Position", ValidatePosition},
}

// ValidateApplication runs the full-form validation in a single pass over
// the fields in form order: presence first, then the field's format or
// membership rule. Errors therefore keep strict form order and Errors[0]
// is always the first failing field, the caller's scroll/focus target.
func ValidateApplication(req *dtos.ApplicationRequest) *Result {
	result := NewResult()

	for _, f := range formFields {
		v := strings.TrimSpace(f.value(req))
		if v == "" {
			result.AddError(f.name, f.label+" is required")
			continue
		}
		if f.check != nil {
			if ok, msg := f.check(v); !ok {
				result.AddError(f.name, msg)
			}
		}
	}

	return result
}
