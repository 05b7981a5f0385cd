package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eurder/internal/model"
	"eurder/internal/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email_address VARCHAR(255) NOT NULL,
			street_name VARCHAR(255) NOT NULL,
			house_number VARCHAR(50) NOT NULL,
			postal_code VARCHAR(50) NOT NULL,
			country VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(19, 2) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES customers(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			item_id UUID NOT NULL REFERENCES items(id),
			ordered_amount INTEGER NOT NULL CHECK (ordered_amount > 0),
			item_price NUMERIC(19, 2) NOT NULL,
			position INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_item_id ON order_items(item_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCustomer inserts a test customer and returns it.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) model.Customer {
	t.Helper()

	ctx := context.Background()

	customer := model.NewCustomer(uuid.Nil, "Jane", "Doe", "jane.doe@example.com",
		model.Address{
			StreetName:  "Main Street",
			HouseNumber: "42",
			PostalCode:  "1000",
			Country:     "Belgium",
		})

	_, err := pool.Exec(ctx,
		`INSERT INTO customers (id, first_name, last_name, email_address,
			street_name, house_number, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		customer.ID, customer.FirstName, customer.LastName, customer.EmailAddress,
		customer.Address.StreetName, customer.Address.HouseNumber,
		customer.Address.PostalCode, customer.Address.Country,
	)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	return customer
}

// SeedItems inserts test catalogue items and returns them.
func SeedItems(t *testing.T, pool *pgxpool.Pool) []model.Item {
	t.Helper()

	ctx := context.Background()

	fixtures := []struct {
		name        string
		description string
		price       float64
	}{
		{"Keyboard", "Mechanical keyboard", 35.00},
		{"Mouse", "Wireless mouse", 45.00},
		{"Monitor", "27 inch display", 40.00},
	}

	items := make([]model.Item, 0, len(fixtures))
	for _, f := range fixtures {
		price, err := money.FromFloat(f.price)
		if err != nil {
			t.Fatalf("failed to build price for %s: %v", f.name, err)
		}
		item := model.NewItem(uuid.Nil, f.name, f.description, price)

		_, err = pool.Exec(ctx,
			"INSERT INTO items (id, name, description, price) VALUES ($1, $2, $3, $4)",
			item.ID, item.Name, item.Description, item.Price.String(),
		)
		if err != nil {
			t.Fatalf("failed to seed item %s: %v", f.name, err)
		}

		items = append(items, item)
	}

	return items
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "items", "customers"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
