package seed

import (
	"context"
	"fmt"

	"eurder/internal/model"
	"eurder/internal/money"
	"eurder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder inserts catalogue items from a seed source into the item store,
// skipping items that already exist.
type Seeder struct {
	loader   Loader
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(loader Loader, itemRepo repository.ItemRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:   loader,
		itemRepo: itemRepo,
		logger:   logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads the seed source and inserts every item not already present.
// Existing items are left untouched, so price changes in the seed file do
// not overwrite catalogue updates made through the API.
func (s *Seeder) Run(ctx context.Context, source string) error {
	records, err := s.loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	inserted := 0
	skipped := 0

	for _, record := range records {
		item, err := toItem(record)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("item_id", record.ID).
				Msg("invalid seed record")
			return fmt.Errorf("invalid seed record %q: %w", record.ID, err)
		}

		existing, err := s.itemRepo.GetByID(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("failed to check item %s: %w", item.ID, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		if err := s.itemRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to seed item %s: %w", item.ID, err)
		}
		inserted++
	}

	s.logger.Info().
		Int("inserted", inserted).
		Int("skipped", skipped).
		Msg("catalogue seeding completed")

	return nil
}

// toItem converts a seed record into a domain item.
func toItem(record ItemRecord) (model.Item, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return model.Item{}, model.ErrMalformedIdentifier
	}

	price, err := money.FromFloat(record.Price)
	if err != nil {
		return model.Item{}, model.ErrInvalidAmount
	}

	return model.NewItem(id, record.Name, record.Description, price), nil
}
