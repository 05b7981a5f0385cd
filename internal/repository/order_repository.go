package repository

import (
	"context"
	"fmt"

	"eurder/internal/model"
	"eurder/internal/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order model.Order) error {
	query := `
		INSERT INTO orders (id, customer_id)
		VALUES ($1, $2)
	`

	_, err := tx.Exec(ctx, query, order.ID, order.CustomerID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts the order's lines within the provided transaction.
// The position column preserves insertion order across reads.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, item_id, ordered_amount, item_price, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for i, item := range items {
		batch.Queue(query, uuid.New(), orderID, item.ItemID, item.OrderedAmount, item.ItemPrice.String(), i)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", orderID.String()).
				Str("item_id", items[i].ItemID.String()).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order with its lines.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	orderQuery := `
		SELECT id, customer_id
		FROM orders
		WHERE id = $1
	`

	var orderID, customerID uuid.UUID
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(&orderID, &customerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT item_id, ordered_amount, item_price::text
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items, err := collectOrderItems(rows)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to scan order items")
		return nil, err
	}

	order := model.NewOrder(orderID, customerID, items)
	return &order, nil
}

// GetAll retrieves all orders with their lines, oldest first.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	ordersQuery := `
		SELECT id, customer_id
		FROM orders
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, ordersQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	type orderHead struct {
		id         uuid.UUID
		customerID uuid.UUID
	}
	var heads []orderHead
	for rows.Next() {
		var h orderHead
		if err := rows.Scan(&h.id, &h.customerID); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		heads = append(heads, h)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(heads) == 0 {
		return []model.Order{}, nil
	}

	ids := make([]uuid.UUID, len(heads))
	for i, h := range heads {
		ids[i] = h.id
	}

	itemsQuery := `
		SELECT order_id, item_id, ordered_amount, item_price::text
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`

	itemRows, err := r.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	itemsByOrder := make(map[uuid.UUID][]model.OrderItem)
	for itemRows.Next() {
		var (
			orderID   uuid.UUID
			itemID    uuid.UUID
			amount    int
			priceText string
		)
		if err := itemRows.Scan(&orderID, &itemID, &amount, &priceText); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		item, err := buildOrderItem(itemID, amount, priceText)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to build order item")
			return nil, err
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err := itemRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	orders := make([]model.Order, len(heads))
	for i, h := range heads {
		orders[i] = model.NewOrder(h.id, h.customerID, itemsByOrder[h.id])
	}

	return orders, nil
}

// collectOrderItems scans order line rows in position order.
func collectOrderItems(rows pgx.Rows) ([]model.OrderItem, error) {
	var items []model.OrderItem
	for rows.Next() {
		var (
			itemID    uuid.UUID
			amount    int
			priceText string
		)
		if err := rows.Scan(&itemID, &amount, &priceText); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		item, err := buildOrderItem(itemID, amount, priceText)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}
	return items, nil
}

// buildOrderItem reconstructs a line from its stored columns. The quantity
// check constraint guarantees a positive amount, so a failure here means
// corrupt data.
func buildOrderItem(itemID uuid.UUID, amount int, priceText string) (model.OrderItem, error) {
	price, err := money.Parse(priceText)
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("invalid item price %q: %w", priceText, err)
	}
	item, err := model.NewOrderItem(itemID, amount, price)
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("invalid order item row: %w", err)
	}
	return item, nil
}
