// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aistrugglebus/contact-api/internal/db/ent/contact"
	"github.com/aistrugglebus/contact-api/internal/db/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[1].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = func() func(string) error {
		validators := contactDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescEmail is the schema descriptor for email field.
	contactDescEmail := contactFields[2].Descriptor()
	// contact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contact.EmailValidator = func() func(string) error {
		validators := contactDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescCompany is the schema descriptor for company field.
	contactDescCompany := contactFields[3].Descriptor()
	// contact.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	contact.CompanyValidator = contactDescCompany.Validators[0].(func(string) error)
	// contactDescPhone is the schema descriptor for phone field.
	contactDescPhone := contactFields[4].Descriptor()
	// contact.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	contact.PhoneValidator = contactDescPhone.Validators[0].(func(string) error)
	// contactDescSource is the schema descriptor for source field.
	contactDescSource := contactFields[6].Descriptor()
	// contact.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	contact.SourceValidator = func() func(string) error {
		validators := contactDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[7].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
}
