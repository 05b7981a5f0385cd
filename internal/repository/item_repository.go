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

// itemRepository implements the ItemRepository interface using PostgreSQL.
type itemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewItemRepository creates a new PostgreSQL-backed item repository.
func NewItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// Create inserts a new item.
func (r *itemRepository) Create(ctx context.Context, item model.Item) error {
	query := `
		INSERT INTO items (id, name, description, price)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price.String())
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("item_id", item.ID.String()).
			Msg("failed to create item")
		return fmt.Errorf("failed to create item: %w", err)
	}

	r.logger.Debug().
		Str("item_id", item.ID.String()).
		Msg("item created successfully")

	return nil
}

// Update re-persists an existing item. Past orders keep the prices they
// snapshotted at creation time.
func (r *itemRepository) Update(ctx context.Context, item model.Item) (bool, error) {
	query := `
		UPDATE items
		SET name = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price.String())
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("item_id", item.ID.String()).
			Msg("failed to update item")
		return false, fmt.Errorf("failed to update item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("item_id", item.ID.String()).Msg("item not found for update")
		return false, nil
	}

	return true, nil
}

// GetAll retrieves all items.
func (r *itemRepository) GetAll(ctx context.Context) ([]model.Item, error) {
	query := `
		SELECT id, name, description, price::text
		FROM items
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query items")
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan item row")
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating item rows")
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single item by ID.
func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	query := `
		SELECT id, name, description, price::text
		FROM items
		WHERE id = $1
	`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("item_id", id.String()).Msg("item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to query item")
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	return &item, nil
}

// scanItem builds an item record from a row. Prices travel as text between
// NUMERIC columns and the decimal representation.
func scanItem(row pgx.Row) (model.Item, error) {
	var (
		id                uuid.UUID
		name, description string
		priceText         string
	)
	if err := row.Scan(&id, &name, &description, &priceText); err != nil {
		return model.Item{}, err
	}

	price, err := money.Parse(priceText)
	if err != nil {
		return model.Item{}, fmt.Errorf("invalid price %q: %w", priceText, err)
	}

	return model.NewItem(id, name, description, price), nil
}
