package model

import "time"

// Metadata carries audit columns shared by every persisted entity.
// CreatedAt and ModifiedAt have no db tags on purpose: the database
// fills them via column defaults on insert.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
