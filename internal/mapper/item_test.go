package mapper

import (
	"testing"

	"eurder/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemToDomain(t *testing.T) {
	id := uuid.New()
	dto := ItemDTO{
		ID:          id.String(),
		Name:        "Chessboard",
		Description: "Walnut, tournament size",
		Price:       42.50,
	}

	item, err := ItemToDomain(dto)

	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, "Chessboard", item.Name)
	assert.Equal(t, 42.50, item.Price.Float64())
}

func TestItemToDomain_NegativePrice(t *testing.T) {
	_, err := ItemToDomain(ItemDTO{Name: "Chessboard", Price: -1})

	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestItemToDomain_MalformedID(t *testing.T) {
	_, err := ItemToDomain(ItemDTO{ID: "nope", Price: 1})

	assert.ErrorIs(t, err, model.ErrMalformedIdentifier)
}

func TestItem_RoundTrip(t *testing.T) {
	original := ItemDTO{
		ID:          uuid.New().String(),
		Name:        "Chessboard",
		Description: "Walnut, tournament size",
		Price:       42.50,
	}

	item, err := ItemToDomain(original)
	require.NoError(t, err)

	assert.Equal(t, original, ItemToDTO(item))
}
