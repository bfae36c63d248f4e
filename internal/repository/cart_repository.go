package repository

import (
	"context"
	"fmt"
	"time"

	"moshood-fashion/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository for signed-in customers using
// PostgreSQL. Lines are matched on (product_id, user_id, email).
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

const cartColumns = `id, product_id, user_id, email, name, category, image, price, quantity, created_at, updated_at`

func scanCartLine(row pgx.Row, l *model.CartLine) error {
	return row.Scan(
		&l.ID,
		&l.ProductID,
		&l.UserID,
		&l.Email,
		&l.Name,
		&l.Category,
		&l.Image,
		&l.Price,
		&l.Quantity,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
}

// Add inserts a new cart line for the owner.
func (r *cartRepository) Add(ctx context.Context, line *model.CartLine) error {
	query := `
		INSERT INTO cart (id, product_id, user_id, email, name, category, image, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		line.ID,
		line.ProductID,
		line.UserID,
		line.Email,
		line.Name,
		line.Category,
		line.Image,
		line.Price,
		line.Quantity,
		line.CreatedAt,
		line.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", line.ProductID.String()).
			Str("email", line.Email).
			Msg("failed to insert cart line")
		return fmt.Errorf("failed to insert cart line: %w", err)
	}

	return nil
}

// GetLine retrieves the owner's line for a product.
func (r *cartRepository) GetLine(ctx context.Context, owner model.CartOwner, productID uuid.UUID) (*model.CartLine, error) {
	query := `
		SELECT ` + cartColumns + `
		FROM cart
		WHERE product_id = $1 AND user_id = $2 AND email = $3
	`

	var l model.CartLine
	err := scanCartLine(r.pool.QueryRow(ctx, query, productID, owner.UserID, owner.Email), &l)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to query cart line")
		return nil, fmt.Errorf("failed to query cart line: %w", err)
	}

	return &l, nil
}

// GetByOwner retrieves all of the owner's cart lines.
func (r *cartRepository) GetByOwner(ctx context.Context, owner model.CartOwner) ([]model.CartLine, error) {
	query := `
		SELECT ` + cartColumns + `
		FROM cart
		WHERE user_id = $1 AND email = $2
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, owner.UserID, owner.Email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", owner.Email).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := scanCartLine(rows, &l); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart line row")
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart line rows")
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// UpdateQuantity sets the quantity of the owner's line for a product.
func (r *cartRepository) UpdateQuantity(ctx context.Context, owner model.CartOwner, productID uuid.UUID, quantity int) error {
	query := `
		UPDATE cart
		SET quantity = $4, updated_at = $5
		WHERE product_id = $1 AND user_id = $2 AND email = $3
	`

	tag, err := r.pool.Exec(ctx, query, productID, owner.UserID, owner.Email, quantity, time.Now())
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Int("quantity", quantity).
			Msg("failed to update cart quantity")
		return fmt.Errorf("failed to update cart quantity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Remove deletes the owner's line for a product.
func (r *cartRepository) Remove(ctx context.Context, owner model.CartOwner, productID uuid.UUID) error {
	query := `
		DELETE FROM cart
		WHERE product_id = $1 AND user_id = $2 AND email = $3
	`

	_, err := r.pool.Exec(ctx, query, productID, owner.UserID, owner.Email)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to delete cart line")
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	return nil
}
