package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record holds the identity and timestamps shared by slots and visit requests.
// Neither is soft-deleted.
type Record struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewRecord assigns a fresh id stamped at now.
func NewRecord(now time.Time) Record {
	return Record{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
