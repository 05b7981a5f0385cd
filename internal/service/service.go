package service

import (
	"context"

	"eurder/internal/model"

	"github.com/google/uuid"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// Create persists a new customer and returns the stored form.
	Create(ctx context.Context, customer model.Customer) (model.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by ID.
	GetByID(ctx context.Context, id uuid.UUID) (model.Customer, error)
}

// ItemService defines operations for catalogue item management.
type ItemService interface {
	// Create persists a new item and returns the stored form.
	Create(ctx context.Context, item model.Item) (model.Item, error)

	// Update re-persists an existing item.
	Update(ctx context.Context, item model.Item) (model.Item, error)

	// GetAll retrieves all items.
	GetAll(ctx context.Context) ([]model.Item, error)

	// GetByID retrieves a single item by ID.
	GetByID(ctx context.Context, id uuid.UUID) (model.Item, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create validates the customer reference, snapshots item prices and
	// persists the order with its lines.
	Create(ctx context.Context, customerID uuid.UUID, groups []model.ItemGroup) (model.Order, error)

	// GetByID retrieves an order by its ID with all lines.
	GetByID(ctx context.Context, id uuid.UUID) (model.Order, error)

	// GetAll retrieves all orders with their lines, oldest first.
	GetAll(ctx context.Context) ([]model.Order, error)
}
