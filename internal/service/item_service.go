package service

import (
	"context"
	"fmt"

	"eurder/internal/model"
	"eurder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// itemService implements ItemService.
type itemService struct {
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

// NewItemService creates a new item service.
func NewItemService(itemRepo repository.ItemRepository, logger zerolog.Logger) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		logger:   logger.With().Str("service", "item").Logger(),
	}
}

// Create persists a new item and returns the stored form.
func (s *itemService) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("item_id", item.ID.String()).Msg("failed to create item")
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info().
		Str("item_id", item.ID.String()).
		Msg("item created successfully")

	return item, nil
}

// Update re-persists an existing item. Orders placed before the update keep
// the unit prices they snapshotted.
func (s *itemService) Update(ctx context.Context, item model.Item) (model.Item, error) {
	updated, err := s.itemRepo.Update(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", item.ID.String()).Msg("failed to update item")
		return model.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	if !updated {
		s.logger.Debug().Str("item_id", item.ID.String()).Msg("item not found for update")
		return model.Item{}, model.ErrNotFound
	}

	s.logger.Info().
		Str("item_id", item.ID.String()).
		Msg("item updated successfully")

	return item, nil
}

// GetAll retrieves all items.
func (s *itemService) GetAll(ctx context.Context) ([]model.Item, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get items")
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single item by ID.
func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (model.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to get item")
		return model.Item{}, fmt.Errorf("failed to get item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Str("item_id", id.String()).Msg("item not found")
		return model.Item{}, model.ErrNotFound
	}

	return *item, nil
}
