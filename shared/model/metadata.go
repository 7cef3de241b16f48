package model

import "time"

// Metadata carries the audit columns every table shares.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// NewMetadata stamps a record created at now.
func NewMetadata(now time.Time) Metadata {
	return Metadata{CreatedAt: now, ModifiedAt: now}
}
