package repository

import (
	"context"

	"eurder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer.
	Create(ctx context.Context, customer model.Customer) error

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]model.Customer, error)

	// GetByID retrieves a single customer by ID. Returns (nil, nil) when
	// no customer exists for the ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// Exists reports whether a customer with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ItemRepository defines the interface for catalogue item data access operations.
type ItemRepository interface {
	// Create inserts a new item.
	Create(ctx context.Context, item model.Item) error

	// Update re-persists an existing item. Returns false when no item
	// exists for the ID.
	Update(ctx context.Context, item model.Item) (bool, error)

	// GetAll retrieves all items.
	GetAll(ctx context.Context) ([]model.Item, error)

	// GetByID retrieves a single item by ID. Returns (nil, nil) when no
	// item exists for the ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order model.Order) error

	// CreateOrderItems inserts the order's lines within the provided
	// transaction, preserving their position.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.OrderItem) error

	// GetByID retrieves an order with its lines. Returns (nil, nil) when
	// no order exists for the ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetAll retrieves all orders with their lines, oldest first.
	GetAll(ctx context.Context) ([]model.Order, error)
}
