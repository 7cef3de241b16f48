package model

import (
	"database/sql"
	"paroisse/shared/model"
)

const (
	TableName  = "intentions"
	EntityName = "intention"

	FieldID              = "id"
	FieldBookingRef      = "booking_ref"
	FieldParishID        = "parish_id"
	FieldCelebrationDate = "celebration_date"
	FieldCelebrationTime = "celebration_time"
)

// Intention is one celebration of a booking. Rows of a multi-day booking share
// BookingRef, Donor and MassType.
type Intention struct {
	ID              int64         `db:"id" readonly:"true"`
	BookingRef      string        `db:"booking_ref"`
	Donor           string        `db:"donor"`
	ParishID        sql.NullInt64 `db:"parish_id"`
	CelebrationDate string        `db:"celebration_date"`
	CelebrationTime string        `db:"celebration_time"`
	MassType        string        `db:"mass_type"`
	Text            string        `db:"text"`
	Occurrence      int           `db:"occurrence"`
	model.Metadata
}
