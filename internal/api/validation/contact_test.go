package validation

import (
	"strings"
	"testing"

	"github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorFields(errs []contact.FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateContactInputAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{
			name: "required fields only",
			input: map[string]any{
				"name":   "John Doe",
				"email":  "john@example.com",
				"source": "contact",
			},
		},
		{
			name: "all fields",
			input: map[string]any{
				"name":    "Jane Smith",
				"email":   "jane@example.com",
				"company": "ACME Corp",
				"phone":   "555-1234",
				"message": "I would like to learn more.",
				"source":  "assessment",
			},
		},
		{
			name: "plus-addressed email",
			input: map[string]any{
				"name":   "John",
				"email":  "john+tag@sub.example.co.uk",
				"source": "quiz",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, errs := ValidateContactInput(tt.input)
			require.Nil(t, errs)
			require.NotNil(t, data)
			assert.Equal(t, tt.input["name"], data.Name)
			assert.Equal(t, tt.input["email"], data.Email)
			assert.Equal(t, tt.input["source"], data.Source)
		})
	}
}

func TestValidateContactInputTrimsFields(t *testing.T) {
	data, errs := ValidateContactInput(map[string]any{
		"name":   "  John Doe  ",
		"email":  " john@example.com ",
		"source": "contact",
	})
	require.Nil(t, errs)
	assert.Equal(t, "John Doe", data.Name)
	assert.Equal(t, "john@example.com", data.Email)
}

func TestValidateContactInputRequiredFields(t *testing.T) {
	tests := []struct {
		name       string
		input      map[string]any
		wantFields []string
	}{
		{
			name:       "all missing",
			input:      map[string]any{},
			wantFields: []string{"name", "email", "source"},
		},
		{
			name: "missing email and source",
			input: map[string]any{
				"name": "John Doe",
			},
			wantFields: []string{"email", "source"},
		},
		{
			name: "whitespace-only counts as missing",
			input: map[string]any{
				"name":   "   ",
				"email":  "john@example.com",
				"source": "contact",
			},
			wantFields: []string{"name"},
		},
		{
			name: "non-string values are not coerced",
			input: map[string]any{
				"name":   42,
				"email":  true,
				"source": nil,
			},
			wantFields: []string{"name", "email", "source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, errs := ValidateContactInput(tt.input)
			assert.Nil(t, data)
			assert.ElementsMatch(t, tt.wantFields, errorFields(errs))
		})
	}
}

func TestValidateContactInputEmailFormat(t *testing.T) {
	invalid := []string{
		"not-an-email",
		"missing@tld",
		"@example.com",
		"two@@example.com",
		"john@example.c",
	}

	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			data, errs := ValidateContactInput(map[string]any{
				"name":   "John",
				"email":  email,
				"source": "contact",
			})
			assert.Nil(t, data)
			require.Len(t, errs, 1)
			assert.Equal(t, "email", errs[0].Field)
			assert.Equal(t, "Invalid email format", errs[0].Message)
		})
	}
}

func TestValidateContactInputSourceEnum(t *testing.T) {
	data, errs := ValidateContactInput(map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "newsletter",
	})
	assert.Nil(t, data)
	require.Len(t, errs, 1)
	assert.Equal(t, "source", errs[0].Field)
	assert.Equal(t, "Invalid source. Must be one of: contact, assessment, sprint, quiz", errs[0].Message)
}

func TestValidateContactInputTruncatesLongFields(t *testing.T) {
	longName := strings.Repeat("a", MaxNameLength+100)

	data, errs := ValidateContactInput(map[string]any{
		"name":   longName,
		"email":  "john@example.com",
		"source": "contact",
	})
	require.Nil(t, errs)
	assert.Len(t, data.Name, MaxNameLength)

	// A source gets truncated before the enum check, so an overlong value
	// that starts with a valid source still fails membership
	data, errs = ValidateContactInput(map[string]any{
		"name":   "John",
		"email":  "john@example.com",
		"source": "contact" + strings.Repeat("x", 50),
	})
	assert.Nil(t, data)
	require.Len(t, errs, 1)
	assert.Equal(t, "source", errs[0].Field)
}

func TestValidateContactInputOverlongEmailInvalid(t *testing.T) {
	// Structurally fine but longer than the email maximum
	email := strings.Repeat("a", MaxEmailLength) + "@example.com"

	data, errs := ValidateContactInput(map[string]any{
		"name":   "John",
		"email":  email,
		"source": "contact",
	})
	assert.Nil(t, data)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Invalid email format", errs[0].Message)
}

func TestValidateContactInputOptionalFieldsAbsent(t *testing.T) {
	data, errs := ValidateContactInput(map[string]any{
		"name":    "John",
		"email":   "john@example.com",
		"source":  "contact",
		"company": "   ",
	})
	require.Nil(t, errs)
	assert.Nil(t, data.Company)
	assert.Nil(t, data.Phone)
	assert.Nil(t, data.Message)
}

func TestValidateContactInputIsPure(t *testing.T) {
	input := map[string]any{
		"name":   "John",
		"email":  "bad-email",
		"source": "contact",
	}

	_, errs1 := ValidateContactInput(input)
	_, errs2 := ValidateContactInput(input)
	assert.Equal(t, errs1, errs2)
}
