package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifrashafqat/job-portal/internal/dtos"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "john@example.com", true},
		{"subdomain", "john@mail.example.co.uk", true},
		{"missing domain", "john@", false},
		{"missing local part", "@example.com", false},
		{"no tld", "john@example", false},
		{"spaces", "john doe@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateEmail(tt.email)
			assert.Equal(t, tt.want, ok)
			if !tt.want {
				assert.Equal(t, "Invalid email format", msg)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"formatted US number", "(123) 456-7890", true},
		{"bare digits", "1234567890", true},
		{"with country code", "+14155552671", true},
		{"hyphenated", "123-456-7890", true},
		{"too short", "12345", false},
		{"leading zero", "0123456789", false},
		{"letters", "12345abcde", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidatePhone(tt.phone)
			assert.Equal(t, tt.want, ok)
			if !tt.want {
				assert.Contains(t, msg, "10 digits")
			}
		})
	}
}

func TestValidateTaxID(t *testing.T) {
	tests := []struct {
		name  string
		taxID string
		want  bool
	}{
		{"hyphenated", "123-45-6789", true},
		{"no hyphens", "123456789", false},
		{"wrong grouping", "12-345-6789", false},
		{"too long", "123-45-67890", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateTaxID(tt.taxID)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"five digits", "12345", true},
		{"zip plus four", "12345-6789", true},
		{"four digits", "1234", false},
		{"plus four too short", "12345-678", false},
		{"letters", "1234a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidatePostalCode(tt.code)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidatePositionAndCountry(t *testing.T) {
	ok, _ := ValidatePosition("Backend Developer")
	assert.True(t, ok)

	ok, msg := ValidatePosition("Wizard")
	assert.False(t, ok)
	assert.Equal(t, "Invalid role selected", msg)

	ok, _ = ValidateCountry("Canada")
	assert.True(t, ok)

	ok, msg = ValidateCountry("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, "Invalid country selected", msg)
}

func validRequest() dtos.ApplicationRequest {
	return dtos.ApplicationRequest{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@example.com",
		Phone:      "(123) 456-7890",
		TaxID:      "123-45-6789",
		Occupation: "Engineer",
		Address:    "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
		Country:    "United States",
		Position:   "Backend Developer",
	}
}

func TestValidateApplicationValid(t *testing.T) {
	req := validRequest()
	result := ValidateApplication(&req)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateApplicationSingleViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dtos.ApplicationRequest)
		wantField string
	}{
		{"bad email", func(r *dtos.ApplicationRequest) { r.Email = "john@" }, "email"},
		{"short phone", func(r *dtos.ApplicationRequest) { r.Phone = "12345" }, "phone"},
		{"tax id without hyphens", func(r *dtos.ApplicationRequest) { r.TaxID = "123456789" }, "taxId"},
		{"bad postal code", func(r *dtos.ApplicationRequest) { r.PostalCode = "123" }, "postalCode"},
		{"unknown country", func(r *dtos.ApplicationRequest) { r.Country = "Atlantis" }, "country"},
		{"unknown position", func(r *dtos.ApplicationRequest) { r.Position = "Wizard" }, "position"},
		{"whitespace-only occupation", func(r *dtos.ApplicationRequest) { r.Occupation = "   " }, "occupation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			result := ValidateApplication(&req)
			require.False(t, result.Valid)
			require.Len(t, result.Errors, 1, "exactly one field error expected")
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
		})
	}
}

func TestValidateApplicationErrorOrder(t *testing.T) {
	req := validRequest()
	req.FirstName = ""
	req.Email = "nope"
	req.Position = ""

	result := ValidateApplication(&req)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 3)
	// Errors come in form order; the first one is the focus target.
	assert.Equal(t, "firstName", result.Errors[0].Field)
	assert.Equal(t, "email", result.Errors[1].Field)
	assert.Equal(t, "position", result.Errors[2].Field)
}

func TestValidateApplicationFormatErrorKeepsFormOrder(t *testing.T) {
	// A format failure on an earlier field must take the focus slot ahead
	// of a presence failure on a later one.
	req := validRequest()
	req.Email = "nope" // field 3, format failure
	req.Phone = ""     // field 4, presence failure

	result := ValidateApplication(&req)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "email", result.Errors[0].Field)
	assert.Equal(t, "Invalid email format", result.Errors[0].Message)
	assert.Equal(t, "phone", result.Errors[1].Field)
}
