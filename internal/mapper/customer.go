package mapper

import (
	"eurder/internal/model"

	"github.com/google/uuid"
)

// CustomerToDomain converts a wire customer into a domain record. An absent
// id yields a generated one; a present but malformed id fails before any
// persistence is attempted.
func CustomerToDomain(dto CustomerDTO) (model.Customer, error) {
	id, err := parseOptionalID(dto.ID)
	if err != nil {
		return model.Customer{}, err
	}

	return model.NewCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.EmailAddress,
		AddressToDomain(dto.Address),
	), nil
}

// CustomerToDTO projects a domain customer to its wire form.
func CustomerToDTO(c model.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID.String(),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		EmailAddress: c.EmailAddress,
		Address:      AddressToDTO(c.Address),
	}
}

// AddressToDomain converts a wire address into a domain record.
func AddressToDomain(dto AddressDTO) model.Address {
	return model.Address{
		StreetName:  dto.StreetName,
		HouseNumber: dto.HouseNumber,
		PostalCode:  dto.PostalCode,
		Country:     dto.Country,
	}
}

// AddressToDTO projects a domain address to its wire form.
func AddressToDTO(a model.Address) AddressDTO {
	return AddressDTO{
		StreetName:  a.StreetName,
		HouseNumber: a.HouseNumber,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
	}
}

// parseOptionalID parses an identifier string, treating the empty string as
// "not set".
func parseOptionalID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, model.ErrMalformedIdentifier
	}
	return id, nil
}
