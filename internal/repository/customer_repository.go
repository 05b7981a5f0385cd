package repository

import (
	"context"
	"fmt"

	"eurder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, customer model.Customer) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, email_address,
			street_name, house_number, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.EmailAddress,
		customer.Address.StreetName,
		customer.Address.HouseNumber,
		customer.Address.PostalCode,
		customer.Address.Country,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("customer_id", customer.ID.String()).
			Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().
		Str("customer_id", customer.ID.String()).
		Msg("customer created successfully")

	return nil
}

// GetAll retrieves all customers.
func (r *customerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email_address,
			street_name, house_number, postal_code, country
		FROM customers
		ORDER BY last_name, first_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer rows")
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a single customer by ID.
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email_address,
			street_name, house_number, postal_code, country
		FROM customers
		WHERE id = $1
	`

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &customer, nil
}

// Exists reports whether a customer with the given ID exists.
func (r *customerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to check customer existence")
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return exists, nil
}

// scanCustomer builds a customer record from a row.
func scanCustomer(row pgx.Row) (model.Customer, error) {
	var (
		id                             uuid.UUID
		firstName, lastName, email     string
		street, house, postal, country string
	)
	err := row.Scan(&id, &firstName, &lastName, &email, &street, &house, &postal, &country)
	if err != nil {
		return model.Customer{}, err
	}

	return model.NewCustomer(id, firstName, lastName, email, model.Address{
		StreetName:  street,
		HouseNumber: house,
		PostalCode:  postal,
		Country:     country,
	}), nil
}
