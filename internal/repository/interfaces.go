package repository

import (
	"context"

	contactdto "github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
	"github.com/aistrugglebus/contact-api/internal/db/ent"
)

// ContactRepository defines the interface for contact-related database
// operations. The store assigns the record's id and timestamp.
type ContactRepository interface {
	// Create persists a validated submission and returns the stored record
	Create(ctx context.Context, submission *contactdto.Submission) (*ent.Contact, error)
	// Count returns the total number of stored contacts
	Count(ctx context.Context) (int, error)
}
