package validation

import (
	"regexp"
	"strings"

	"github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
)

// ValidSources are the accepted values for the submission's source field,
// one per site surface that posts to the contact endpoint.
var ValidSources = []string{"contact", "assessment", "sprint", "quiz"}

// Maximum field lengths. Input is truncated to these, not rejected.
const (
	MaxNameLength    = 200
	MaxEmailLength   = 320 // RFC 5321 max email length
	MaxCompanyLength = 200
	MaxPhoneLength   = 50
	MaxMessageLength = 5000
	MaxSourceLength  = 20
)

// emailRegex validates email structure without chasing RFC completeness:
// a non-empty local part, a single @, a dot-separated domain, and a TLD of
// at least two letters.
var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\\.[a-zA-Z]{2,}$")

// IsValidEmail checks the structural email grammar. Overlong addresses are
// invalid here rather than in the required-field check.
func IsValidEmail(email string) bool {
	if len(email) > MaxEmailLength {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidSource checks enum membership for the source field.
func IsValidSource(source string) bool {
	for _, s := range ValidSources {
		if source == s {
			return true
		}
	}
	return false
}

// sanitizeString trims and truncates a raw field. Returns nil for
// non-strings and for values that are empty after trimming; values are never
// coerced from other JSON types.
func sanitizeString(value any, maxLength int) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if runes := []rune(trimmed); len(runes) > maxLength {
		trimmed = string(runes[:maxLength])
	}
	return &trimmed
}

// ValidateContactInput sanitizes and validates a raw submission. It never
// short-circuits: a single response carries every violation, so the caller
// can fix all of them in one round trip. On success the returned errors are
// nil; on failure the submission is nil.
func ValidateContactInput(input map[string]any) (*contact.Submission, []contact.FieldError) {
	var errors []contact.FieldError

	name := sanitizeString(input["name"], MaxNameLength)
	if name == nil {
		errors = append(errors, contact.FieldError{Field: "name", Message: "Name is required"})
	}

	email := sanitizeString(input["email"], MaxEmailLength)
	if email == nil {
		errors = append(errors, contact.FieldError{Field: "email", Message: "Email is required"})
	} else if !IsValidEmail(*email) {
		errors = append(errors, contact.FieldError{Field: "email", Message: "Invalid email format"})
	}

	source := sanitizeString(input["source"], MaxSourceLength)
	if source == nil {
		errors = append(errors, contact.FieldError{Field: "source", Message: "Source is required"})
	} else if !IsValidSource(*source) {
		errors = append(errors, contact.FieldError{
			Field:   "source",
			Message: "Invalid source. Must be one of: " + strings.Join(ValidSources, ", "),
		})
	}

	company := sanitizeString(input["company"], MaxCompanyLength)
	phone := sanitizeString(input["phone"], MaxPhoneLength)
	message := sanitizeString(input["message"], MaxMessageLength)

	if len(errors) > 0 {
		return nil, errors
	}

	return &contact.Submission{
		Name:    *name,
		Email:   *email,
		Company: company,
		Phone:   phone,
		Message: message,
		Source:  *source,
	}, nil
}
