package repository

import (
	"context"
	"fmt"

	"moshood-fashion/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// requestRepository implements the RequestRepository interface using PostgreSQL.
type requestRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRequestRepository creates a new PostgreSQL-backed product request repository.
func NewRequestRepository(pool *pgxpool.Pool, logger zerolog.Logger) RequestRepository {
	return &requestRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "request").Logger(),
	}
}

const requestColumns = `id, user_id, inspiration_images, budget, expected_date, contact_name, contact_email, contact_phone, gender, clothing_size, additional_info, submitted_at`

func scanRequest(row pgx.Row, req *model.ProductRequest) error {
	return row.Scan(
		&req.ID,
		&req.UserID,
		&req.InspirationImages,
		&req.Budget,
		&req.ExpectedDate,
		&req.ContactName,
		&req.ContactEmail,
		&req.ContactPhone,
		&req.Gender,
		&req.ClothingSize,
		&req.AdditionalInfo,
		&req.SubmittedAt,
	)
}

// Create inserts a new product request.
func (r *requestRepository) Create(ctx context.Context, request *model.ProductRequest) error {
	query := `
		INSERT INTO product_requests (id, user_id, inspiration_images, budget, expected_date, contact_name, contact_email, contact_phone, gender, clothing_size, additional_info, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.UserID,
		request.InspirationImages,
		request.Budget,
		request.ExpectedDate,
		request.ContactName,
		request.ContactEmail,
		request.ContactPhone,
		request.Gender,
		request.ClothingSize,
		request.AdditionalInfo,
		request.SubmittedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("request_id", request.ID.String()).Msg("failed to create product request")
		return fmt.Errorf("failed to create product request: %w", err)
	}

	return nil
}

// GetByID retrieves a request by its ID.
func (r *requestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM product_requests
		WHERE id = $1
	`

	var req model.ProductRequest
	err := scanRequest(r.pool.QueryRow(ctx, query, id), &req)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("request_id", id.String()).Msg("failed to query product request")
		return nil, fmt.Errorf("failed to query product request: %w", err)
	}

	return &req, nil
}

// GetByUser retrieves a customer's requests, newest first.
func (r *requestRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.ProductRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM product_requests
		WHERE user_id = $1
		ORDER BY submitted_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query product requests")
		return nil, fmt.Errorf("failed to query product requests: %w", err)
	}
	defer rows.Close()

	return r.collectRequests(rows)
}

// GetAll retrieves all requests, newest first.
func (r *requestRepository) GetAll(ctx context.Context, limit, offset int) ([]model.ProductRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM product_requests
		ORDER BY submitted_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query product requests")
		return nil, fmt.Errorf("failed to query product requests: %w", err)
	}
	defer rows.Close()

	return r.collectRequests(rows)
}

// UpdateAdditionalInfo replaces the free-text notes on a request.
func (r *requestRepository) UpdateAdditionalInfo(ctx context.Context, id uuid.UUID, info string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE product_requests SET additional_info = $2 WHERE id = $1`, id, info)
	if err != nil {
		r.logger.Error().Err(err).Str("request_id", id.String()).Msg("failed to update product request")
		return fmt.Errorf("failed to update product request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes a request.
func (r *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_requests WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("request_id", id.String()).Msg("failed to delete product request")
		return fmt.Errorf("failed to delete product request: %w", err)
	}

	return nil
}

func (r *requestRepository) collectRequests(rows pgx.Rows) ([]model.ProductRequest, error) {
	var requests []model.ProductRequest
	for rows.Next() {
		var req model.ProductRequest
		if err := scanRequest(rows, &req); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product request row")
			return nil, fmt.Errorf("failed to scan product request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product request rows")
		return nil, fmt.Errorf("error iterating product requests: %w", err)
	}

	return requests, nil
}
