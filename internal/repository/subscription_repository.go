package repository

import (
	"context"
	"fmt"

	"moshood-fashion/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// subscriptionRepository implements SubscriptionRepository using PostgreSQL.
type subscriptionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSubscriptionRepository creates a new PostgreSQL-backed subscription repository.
func NewSubscriptionRepository(pool *pgxpool.Pool, logger zerolog.Logger) SubscriptionRepository {
	return &subscriptionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "subscription").Logger(),
	}
}

// Create inserts a new subscription row. No uniqueness check; the same
// email may subscribe any number of times.
func (r *subscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, email, subscription_date)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, sub.ID, sub.Email, sub.SubscriptionDate)
	if err != nil {
		r.logger.Error().Err(err).Str("email", sub.Email).Msg("failed to create subscription")
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// GetAll retrieves every subscription row, duplicates included.
func (r *subscriptionRepository) GetAll(ctx context.Context) ([]model.Subscription, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, subscription_date FROM subscriptions`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query subscriptions")
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		var s model.Subscription
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscriptionDate); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan subscription row")
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating subscription rows")
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return subs, nil
}

// contactRepository implements ContactRepository using PostgreSQL.
type contactRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewContactRepository creates a new PostgreSQL-backed contact profile repository.
func NewContactRepository(pool *pgxpool.Pool, logger zerolog.Logger) ContactRepository {
	return &contactRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "contact").Logger(),
	}
}

// Create inserts a new contact profile row. Submissions never update in
// place, so one email can accumulate several rows over time.
func (r *contactRepository) Create(ctx context.Context, profile *model.ContactProfile) error {
	query := `
		INSERT INTO contact_info (id, customer_name, customer_email, customer_phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.CustomerName,
		profile.CustomerEmail,
		profile.CustomerPhone,
		profile.Address,
		profile.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", profile.CustomerEmail).Msg("failed to create contact profile")
		return fmt.Errorf("failed to create contact profile: %w", err)
	}

	return nil
}

// GetByEmail retrieves the most recent profile for an email.
func (r *contactRepository) GetByEmail(ctx context.Context, email string) (*model.ContactProfile, error) {
	query := `
		SELECT id, customer_name, customer_email, customer_phone, address, created_at
		FROM contact_info
		WHERE customer_email = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p model.ContactProfile
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&p.ID,
		&p.CustomerName,
		&p.CustomerEmail,
		&p.CustomerPhone,
		&p.Address,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query contact profile")
		return nil, fmt.Errorf("failed to query contact profile: %w", err)
	}

	return &p, nil
}
