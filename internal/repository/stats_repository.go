package repository

import (
	"context"
	"fmt"

	"moshood-fashion/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// statsRepository implements the StatsRepository interface using PostgreSQL.
type statsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStatsRepository creates a new PostgreSQL-backed stats repository.
func NewStatsRepository(pool *pgxpool.Pool, logger zerolog.Logger) StatsRepository {
	return &statsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "stats").Logger(),
	}
}

// CountOrders counts all orders.
func (r *statsRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders`)
}

// CountOrdersByStatus counts orders whose status is in the given set.
func (r *statsRepository) CountOrdersByStatus(ctx context.Context, statuses ...model.OrderStatus) (int64, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = ANY($1)`, values).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders by status")
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}

	return count, nil
}

// CountRequests counts all product requests.
func (r *statsRepository) CountRequests(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM product_requests`)
}

// CountUsers counts all accounts.
func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// SumPayments sums all payment amounts with no currency normalisation.
func (r *statsRepository) SumPayments(ctx context.Context) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&sum)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to sum payments")
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}

	return sum, nil
}

func (r *statsRepository) count(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Error().Err(err).Str("query", query).Msg("failed to run count query")
		return 0, fmt.Errorf("failed to run count query: %w", err)
	}
	return count, nil
}
