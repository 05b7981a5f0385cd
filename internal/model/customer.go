package model

import "github.com/google/uuid"

// Address is a customer's postal address.
type Address struct {
	StreetName  string `db:"street_name"`
	HouseNumber string `db:"house_number"`
	PostalCode  string `db:"postal_code"`
	Country     string `db:"country"`
}

// Customer represents a registered customer.
type Customer struct {
	Entity
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	EmailAddress string `db:"email_address"`
	Address      Address
}

// NewCustomer creates a customer record, generating an identifier when id
// is uuid.Nil.
func NewCustomer(id uuid.UUID, firstName, lastName, emailAddress string, address Address) Customer {
	return Customer{
		Entity:       newEntity(id),
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: emailAddress,
		Address:      address,
	}
}
