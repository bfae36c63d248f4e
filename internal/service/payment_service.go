package service

import (
	"context"
	"fmt"
	"time"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type paymentService struct {
	repo   repository.PaymentRepository
	logger zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, logger zerolog.Logger) PaymentService {
	return &paymentService{
		repo:   repo,
		logger: logger.With().Str("service", "payment").Logger(),
	}
}

// Record persists a payment callback as an immutable payment row.
func (s *paymentService) Record(ctx context.Context, callback *model.PaymentCallback) (*model.Payment, error) {
	payment := &model.Payment{
		ID:            uuid.New(),
		TransactionID: callback.TransactionID,
		TxRef:         callback.TxRef,
		FlwRef:        callback.FlwRef,
		Amount:        callback.Amount,
		Currency:      callback.Currency,
		Status:        callback.Status,
		CustomerName:  callback.Customer.Name,
		CustomerEmail: callback.Customer.Email,
		PhoneNumber:   callback.Customer.PhoneNumber,
		PaidAt:        time.Now(),
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info().
		Str("tx_ref", payment.TxRef).
		Float64("amount", payment.Amount).
		Str("currency", payment.Currency).
		Msg("payment recorded")
	return payment, nil
}

func (s *paymentService) GetAll(ctx context.Context, limit, offset int) ([]model.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	payments, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
