package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Contact holds the schema definition for the Contact entity, one row per
// accepted contact form submission.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty().
			MaxLen(200),
		field.String("email").
			NotEmpty().
			MaxLen(320),
		field.String("company").
			Optional().
			Nillable().
			MaxLen(200),
		field.String("phone").
			Optional().
			Nillable().
			MaxLen(50),
		field.Text("message").
			Optional().
			Nillable(),
		// The accepted values are owned by the validation layer
		field.String("source").
			NotEmpty().
			MaxLen(20),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("created_at"),
	}
}
