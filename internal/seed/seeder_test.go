package seed

import (
	"context"
	"testing"

	"eurder/internal/model"
	"eurder/internal/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLoader is a mock implementation of Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, source string) ([]ItemRecord, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ItemRecord), args.Error(1)
}

// MockItemRepository is a mock implementation of repository.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item model.Item) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) GetAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func mustPrice(t *testing.T, s string) money.Price {
	t.Helper()
	p, err := money.Parse(s)
	require.NoError(t, err)
	return p
}

func TestSeeder_Run_InsertsMissingItems(t *testing.T) {
	ctx := context.Background()

	newID := uuid.New()
	existingID := uuid.New()
	records := []ItemRecord{
		{ID: newID.String(), Name: "Chessboard", Description: "Walnut", Price: 42.50},
		{ID: existingID.String(), Name: "Chess clock", Description: "Analog", Price: 19.99},
	}

	loader := new(MockLoader)
	loader.On("Load", ctx, "items.jsonl.gz").Return(records, nil)

	existing := model.NewItem(existingID, "Chess clock", "Analog", mustPrice(t, "19.99"))

	repo := new(MockItemRepository)
	repo.On("GetByID", ctx, newID).Return(nil, nil)
	repo.On("GetByID", ctx, existingID).Return(&existing, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(item model.Item) bool {
		return item.ID == newID
	})).Return(nil)

	seeder := NewSeeder(loader, repo, zerolog.Nop())
	err := seeder.Run(ctx, "items.jsonl.gz")

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSeeder_Run_MalformedRecordID(t *testing.T) {
	ctx := context.Background()

	loader := new(MockLoader)
	loader.On("Load", ctx, "items.jsonl.gz").Return([]ItemRecord{
		{ID: "not-a-uuid", Name: "Chessboard", Price: 1},
	}, nil)

	repo := new(MockItemRepository)

	seeder := NewSeeder(loader, repo, zerolog.Nop())
	err := seeder.Run(ctx, "items.jsonl.gz")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedIdentifier)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeeder_Run_NegativeSeedPrice(t *testing.T) {
	ctx := context.Background()

	loader := new(MockLoader)
	loader.On("Load", ctx, "items.jsonl.gz").Return([]ItemRecord{
		{ID: uuid.New().String(), Name: "Chessboard", Price: -5},
	}, nil)

	seeder := NewSeeder(loader, new(MockItemRepository), zerolog.Nop())
	err := seeder.Run(ctx, "items.jsonl.gz")

	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}
