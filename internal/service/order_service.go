package service

import (
	"context"
	"fmt"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) GetByEmail(ctx context.Context, email string) ([]model.Order, error) {
	orders, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for email: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	orders, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies an admin status transition. Any known status can
// follow any other, including reopening a cancelled order.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	if !status.Valid() {
		return model.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id.String()).Str("status", string(status)).Msg("order status updated")
	return nil
}

// Cancel is the customer-facing cancellation. The caller must own the
// order; the only blocked transition is cancelling twice.
func (s *orderService) Cancel(ctx context.Context, id uuid.UUID, email string) error {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if order.CustomerEmail != email {
		return model.ErrNotOwner
	}
	if order.Status == model.StatusCancelled {
		return model.ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, model.StatusCancelled); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order cancelled by customer")
	return nil
}
