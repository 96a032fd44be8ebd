package repository

import (
	"context"

	contactdto "github.com/aistrugglebus/contact-api/internal/api/dto/v1/contact"
	"github.com/aistrugglebus/contact-api/internal/db/ent"
)

type ContactRepositoryImpl struct {
	client *ent.Client
}

func NewContactRepository(client *ent.Client) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{
		client: client,
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, submission *contactdto.Submission) (*ent.Contact, error) {
	return r.client.Contact.Create().
		SetName(submission.Name).
		SetEmail(submission.Email).
		SetNillableCompany(submission.Company).
		SetNillablePhone(submission.Phone).
		SetNillableMessage(submission.Message).
		SetSource(submission.Source).
		Save(ctx)
}

func (r *ContactRepositoryImpl) Count(ctx context.Context) (int, error) {
	return r.client.Contact.Query().Count(ctx)
}
