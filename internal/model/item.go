package model

import (
	"eurder/internal/money"

	"github.com/google/uuid"
)

// Item represents a catalogue item available for ordering.
type Item struct {
	Entity
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       money.Price
}

// NewItem creates an item record, generating an identifier when id is uuid.Nil.
func NewItem(id uuid.UUID, name, description string, price money.Price) Item {
	return Item{
		Entity:      newEntity(id),
		Name:        name,
		Description: description,
		Price:       price,
	}
}
