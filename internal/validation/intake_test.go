package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIntakeEvidenceOptional(t *testing.T) {
	req := validRequest()
	req.TaxIDImageURL = ""
	req.LicenseImageURL = ""

	result := ValidateIntake(&req)
	assert.True(t, result.Valid, "empty evidence must be accepted at the server")
}

func TestValidateIntakeEvidenceURLFormat(t *testing.T) {
	req := validRequest()
	req.TaxIDImageURL = "https://i.ibb.co/abc123/tax.png"
	req.LicenseImageURL = "not a url"

	result := ValidateIntake(&req)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "licenseImageUrl", result.Errors[0].Field)
}

func TestValidateIntakeRejectsRelativeEvidenceURL(t *testing.T) {
	req := validRequest()
	req.TaxIDImageURL = "/uploads/tax.png"

	result := ValidateIntake(&req)
	require.False(t, result.Valid)
	assert.Equal(t, "taxIdImageUrl", result.Errors[0].Field)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"formatted US number", "(415) 555-2671", "+14155552671"},
		{"bare US digits", "4155552671", "+14155552671"},
		{"already E.164", "+14155552671", "+14155552671"},
		{"international", "+44 20 7183 8750", "+442071838750"},
		// Regex-valid but not a real number: enrichment keeps the digits.
		{"unparseable keeps stripped form", "9999999999", "9999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestBuildApplication(t *testing.T) {
	req := validRequest()
	req.FirstName = "  John  "
	req.Email = "  John@Example.COM "
	req.Phone = "(415) 555-2671"

	app := BuildApplication(&req)
	assert.Equal(t, "John", app.FirstName)
	assert.Equal(t, "john@example.com", app.Email)
	assert.Equal(t, "+14155552671", app.Phone)
	assert.Empty(t, app.ID, "id is stamped by the store, not here")
	assert.True(t, app.AppliedAt.IsZero())
}
