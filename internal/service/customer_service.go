package service

import (
	"context"
	"fmt"

	"eurder/internal/model"
	"eurder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Create persists a new customer and returns the stored form. The
// constructor already assigned an identifier, so the record is stored as-is.
func (s *customerService) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customer.ID.String()).Msg("failed to create customer")
		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Msg("customer created successfully")

	return customer, nil
}

// GetAll retrieves all customers.
func (s *customerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get customers")
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by ID.
func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to get customer")
		return model.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		s.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
		return model.Customer{}, model.ErrNotFound
	}

	return *customer, nil
}
