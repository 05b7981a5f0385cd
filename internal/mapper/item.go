package mapper

import (
	"eurder/internal/model"
	"eurder/internal/money"
)

// ItemToDomain converts a wire item into a domain record. A negative price
// fails with ErrInvalidAmount.
func ItemToDomain(dto ItemDTO) (model.Item, error) {
	id, err := parseOptionalID(dto.ID)
	if err != nil {
		return model.Item{}, err
	}

	price, err := money.FromFloat(dto.Price)
	if err != nil {
		return model.Item{}, model.ErrInvalidAmount
	}

	return model.NewItem(id, dto.Name, dto.Description, price), nil
}

// ItemToDTO projects a domain item to its wire form.
func ItemToDTO(i model.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID.String(),
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price.Float64(),
	}
}
