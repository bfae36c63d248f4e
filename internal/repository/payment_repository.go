package repository

import (
	"context"
	"fmt"

	"moshood-fashion/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// paymentRepository implements the PaymentRepository interface using PostgreSQL.
type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

// Create inserts a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (id, transaction_id, tx_ref, flw_ref, amount, currency, status, customer_name, customer_email, phone_number, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		payment.ID,
		payment.TransactionID,
		payment.TxRef,
		payment.FlwRef,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.CustomerName,
		payment.CustomerEmail,
		payment.PhoneNumber,
		payment.PaidAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("transaction_id", payment.TransactionID).
			Str("tx_ref", payment.TxRef).
			Msg("failed to create payment record")
		return fmt.Errorf("failed to create payment record: %w", err)
	}

	r.logger.Debug().
		Int64("transaction_id", payment.TransactionID).
		Msg("payment record created")

	return nil
}

// GetAll retrieves all payment records, newest first.
func (r *paymentRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Payment, error) {
	query := `
		SELECT id, transaction_id, tx_ref, flw_ref, amount, currency, status, customer_name, customer_email, phone_number, paid_at
		FROM payments
		ORDER BY paid_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query payments")
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		err := rows.Scan(
			&p.ID,
			&p.TransactionID,
			&p.TxRef,
			&p.FlwRef,
			&p.Amount,
			&p.Currency,
			&p.Status,
			&p.CustomerName,
			&p.CustomerEmail,
			&p.PhoneNumber,
			&p.PaidAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan payment row")
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating payment rows")
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}
