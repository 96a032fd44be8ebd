// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Size: 320},
		{Name: "company", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeString, Size: 20},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[2]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactsTable,
	}
)

func init() {
}
