package model

import "github.com/google/uuid"

// Entity carries the identity shared by every domain record. Two entities
// are equal iff their identifiers are equal.
type Entity struct {
	ID uuid.UUID `db:"id"`
}

// Equals reports whether two entities refer to the same record.
func (e Entity) Equals(other Entity) bool {
	return e.ID == other.ID
}

// newEntity assigns a generated identifier when none was provided. Seed and
// test data may supply their own.
func newEntity(id uuid.UUID) Entity {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Entity{ID: id}
}
