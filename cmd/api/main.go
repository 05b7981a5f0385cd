package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eurder/internal/config"
	"eurder/internal/database"
	"eurder/internal/handler"
	"eurder/internal/repository"
	"eurder/internal/router"
	"eurder/internal/seed"
	"eurder/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting eurder API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(pool, logger)
	itemRepo := repository.NewItemRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Seed the item catalogue, from S3 when configured with a local file
	// fallback
	if cfg.Seed.Enabled {
		var loader seed.Loader
		if cfg.Seed.S3Enabled {
			s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 seed loader, falling back to local file system")
				loader = seed.NewFileLoader(logger)
			} else {
				loader = s3Loader
			}
		} else {
			loader = seed.NewFileLoader(logger)
		}

		seeder := seed.NewSeeder(loader, itemRepo, logger)
		if err := seeder.Run(ctx, cfg.Seed.Path); err != nil {
			return fmt.Errorf("failed to seed item catalogue: %w", err)
		}
	}

	// Initialize services
	customerService := service.NewCustomerService(customerRepo, logger)
	itemService := service.NewItemService(itemRepo, logger)
	orderService := service.NewOrderService(orderRepo, customerRepo, itemRepo, logger)

	// Initialize HTTP handlers
	customerHandler := handler.NewCustomerHandler(customerService, logger)
	itemHandler := handler.NewItemHandler(itemService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(customerHandler, itemHandler, orderHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
