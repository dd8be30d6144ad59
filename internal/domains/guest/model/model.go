package model

import "frontdesk/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldIDType    = "id_type"
	FieldIDNumber  = "id_number"
	FieldNotes     = "notes"
	FieldActive    = "active"
)

// Guest is the profile keyed by identity document. Bookings snapshot guest
// fields at creation time; this table is the cross-booking view of the person.
type Guest struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	IDType    string `db:"id_type"`
	IDNumber  string `db:"id_number"`
	Notes     string `db:"notes"`
	Active    bool   `db:"active"`
	model.Metadata
}

func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}

	return g.FirstName + " " + g.LastName
}
