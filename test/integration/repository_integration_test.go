package integration

import (
	"context"
	"testing"

	"eurder/internal/model"
	"eurder/internal/money"
	"eurder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCustomerRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByID round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		customer := model.NewCustomer(uuid.Nil, "John", "Smith", "john.smith@example.com",
			model.Address{
				StreetName:  "High Street",
				HouseNumber: "7b",
				PostalCode:  "2000",
				Country:     "Belgium",
			})

		err := repo.Create(ctx, customer)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, customer.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, customer.ID, retrieved.ID)
		assert.Equal(t, "John", retrieved.FirstName)
		assert.Equal(t, "Smith", retrieved.LastName)
		assert.Equal(t, "john.smith@example.com", retrieved.EmailAddress)
		assert.Equal(t, customer.Address, retrieved.Address)
	})

	t.Run("GetByID returns nil for non-existent customer", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		customer, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, customer)
	})

	t.Run("GetAll returns all customers", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCustomer(t, testDB.Pool)

		customers, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, customers, 1)
	})

	t.Run("Exists reports presence", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customer := SeedCustomer(t, testDB.Pool)

		exists, err := repo.Exists(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewItemRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByID preserves exact price", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		price, err := money.Parse("19.99")
		require.NoError(t, err)
		item := model.NewItem(uuid.Nil, "Headset", "Noise cancelling headset", price)

		err = repo.Create(ctx, item)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, item.ID, retrieved.ID)
		assert.Equal(t, "Headset", retrieved.Name)
		assert.True(t, price.Equal(retrieved.Price))
	})

	t.Run("GetAll returns seeded items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedItems(t, testDB.Pool)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("Update overwrites an existing item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		items := SeedItems(t, testDB.Pool)

		newPrice, err := money.Parse("99.50")
		require.NoError(t, err)
		updated := model.NewItem(items[0].ID, "Keyboard Pro", "Upgraded keyboard", newPrice)

		found, err := repo.Update(ctx, updated)
		require.NoError(t, err)
		assert.True(t, found)

		retrieved, err := repo.GetByID(ctx, items[0].ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, "Keyboard Pro", retrieved.Name)
		assert.True(t, newPrice.Equal(retrieved.Price))
	})

	t.Run("Update reports missing item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		price, err := money.Parse("1.00")
		require.NoError(t, err)
		found, err := repo.Update(ctx, model.NewItem(uuid.New(), "Ghost", "Does not exist", price))
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("CreateOrder and CreateOrderItems round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customer := SeedCustomer(t, testDB.Pool)
		items := SeedItems(t, testDB.Pool)

		line1, err := model.NewOrderItem(items[0].ID, 2, items[0].Price)
		require.NoError(t, err)
		line2, err := model.NewOrderItem(items[1].ID, 1, items[1].Price)
		require.NoError(t, err)

		order := model.NewOrder(uuid.Nil, customer.ID, []model.OrderItem{line1, line2})

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		err = repo.CreateOrder(ctx, tx, order)
		require.NoError(t, err)

		err = repo.CreateOrderItems(ctx, tx, order.ID, order.OrderItems())
		require.NoError(t, err)

		err = tx.Commit(ctx)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, order.ID, retrieved.ID)
		assert.Equal(t, customer.ID, retrieved.CustomerID)

		lines := retrieved.OrderItems()
		require.Len(t, lines, 2)
		assert.Equal(t, items[0].ID, lines[0].ItemID)
		assert.Equal(t, 2, lines[0].OrderedAmount)
		assert.True(t, items[0].Price.Equal(lines[0].ItemPrice))
		assert.Equal(t, items[1].ID, lines[1].ItemID)

		// 2 x 35.00 + 1 x 45.00
		expectedTotal, err := money.Parse("115")
		require.NoError(t, err)
		assert.True(t, expectedTotal.Equal(retrieved.TotalPrice()))
	})

	t.Run("GetByID returns nil for non-existent order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("GetAll returns orders with lines", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customer := SeedCustomer(t, testDB.Pool)
		items := SeedItems(t, testDB.Pool)

		for _, item := range items[:2] {
			line, err := model.NewOrderItem(item.ID, 1, item.Price)
			require.NoError(t, err)
			order := model.NewOrder(uuid.Nil, customer.ID, []model.OrderItem{line})

			tx, err := repo.BeginTx(ctx)
			require.NoError(t, err)
			require.NoError(t, repo.CreateOrder(ctx, tx, order))
			require.NoError(t, repo.CreateOrderItems(ctx, tx, order.ID, order.OrderItems()))
			require.NoError(t, tx.Commit(ctx))
		}

		orders, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		for _, order := range orders {
			assert.Len(t, order.OrderItems(), 1)
		}
	})

	t.Run("Transaction rollback discards the order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customer := SeedCustomer(t, testDB.Pool)
		items := SeedItems(t, testDB.Pool)

		line, err := model.NewOrderItem(items[0].ID, 3, items[0].Price)
		require.NoError(t, err)
		order := model.NewOrder(uuid.Nil, customer.ID, []model.OrderItem{line})

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		err = repo.CreateOrder(ctx, tx, order)
		require.NoError(t, err)

		err = tx.Rollback(ctx)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})
}
