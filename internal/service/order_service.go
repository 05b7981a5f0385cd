package service

import (
	"context"
	"fmt"

	"eurder/internal/model"
	"eurder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// Create validates the customer reference, snapshots the current catalogue
// price of every requested item, and persists the order with its lines in
// one transaction. A failed check persists nothing.
func (s *orderService) Create(ctx context.Context, customerID uuid.UUID, groups []model.ItemGroup) (model.Order, error) {
	if len(groups) == 0 {
		return model.Order{}, fmt.Errorf("order must contain at least one item group")
	}

	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to check customer")
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	if !exists {
		s.logger.Warn().
			Str("customer_id", customerID.String()).
			Msg("order references unknown customer")
		return model.Order{}, model.ErrUnknownCustomer
	}

	orderItems := make([]model.OrderItem, len(groups))
	for i, group := range groups {
		item, err := s.itemRepo.GetByID(ctx, group.ItemID)
		if err != nil {
			s.logger.Error().Err(err).Str("item_id", group.ItemID.String()).Msg("failed to look up item")
			return model.Order{}, fmt.Errorf("failed to create order: %w", err)
		}
		if item == nil {
			s.logger.Warn().
				Str("item_id", group.ItemID.String()).
				Msg("order references unknown item")
			return model.Order{}, model.ErrNotFound
		}

		orderItem, err := model.NewOrderItem(group.ItemID, group.OrderedAmount, item.Price)
		if err != nil {
			return model.Order{}, err
		}
		orderItems[i] = orderItem
	}

	order := model.NewOrder(uuid.Nil, customerID, orderItems)

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.ID, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return model.Order{}, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", customerID.String()).
		Int("item_count", len(orderItems)).
		Msg("order created successfully")

	return order, nil
}

// GetByID retrieves an order by its ID with all lines.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return model.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return model.Order{}, model.ErrNotFound
	}

	return *order, nil
}

// GetAll retrieves all orders with their lines, oldest first.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}
