package contact

// Submission is a validated, sanitized contact form submission, safe to hand
// to persistence. Optional fields are nil when absent; they are never the
// empty string.
type Submission struct {
	Name    string
	Email   string
	Company *string
	Phone   *string
	Message *string
	Source  string
}

// FieldError attributes one validation failure to the field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitResponse is the success body for a contact submission. It never
// carries internal identifiers.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the error body for the contact endpoint. Details is only
// populated for validation failures.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
