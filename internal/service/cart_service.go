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

// cartService implements CartService over two repositories: the database
// for signed-in owners and the in-process store for guests. The two are
// never merged; switching from guest to signed-in starts an empty cart.
type cartService struct {
	serverRepo  repository.CartRepository
	guestRepo   repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	serverRepo repository.CartRepository,
	guestRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		serverRepo:  serverRepo,
		guestRepo:   guestRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) repoFor(owner model.CartOwner) repository.CartRepository {
	if owner.Authenticated() {
		return s.serverRepo
	}
	return s.guestRepo
}

// AddLine puts a product in the owner's cart. The line snapshots the
// product's name, category, first image and current price.
func (s *cartService) AddLine(ctx context.Context, req *model.AddCartLineRequest) (*model.CartLine, error) {
	if req.Quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	repo := s.repoFor(req.Owner)

	existing, err := repo.GetLine(ctx, req.Owner, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart line: %w", err)
	}

	if existing != nil {
		newQty := existing.Quantity + req.Quantity
		if err := repo.UpdateQuantity(ctx, req.Owner, req.ProductID, newQty); err != nil {
			return nil, fmt.Errorf("failed to update cart line: %w", err)
		}
		existing.Quantity = newQty
		return existing, nil
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	now := time.Now()
	line := &model.CartLine{
		ID:         uuid.New(),
		ProductID:  product.ID,
		UserID:     req.Owner.UserID,
		Email:      req.Owner.Email,
		GuestToken: req.Owner.GuestToken,
		Name:       product.Name,
		Category:   product.Category,
		Image:      image,
		Price:      product.Price,
		Quantity:   req.Quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repo.Add(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to add cart line: %w", err)
	}

	s.logger.Debug().
		Str("product_id", product.ID.String()).
		Int("quantity", line.Quantity).
		Bool("guest", !req.Owner.Authenticated()).
		Msg("cart line added")

	return line, nil
}

// SetQuantity changes a line's quantity. Values below 1 are clamped to 1,
// so decrementing a single-item line never removes it.
func (s *cartService) SetQuantity(ctx context.Context, req *model.UpdateCartLineRequest) (*model.CartLine, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	repo := s.repoFor(req.Owner)

	if err := repo.UpdateQuantity(ctx, req.Owner, req.ProductID, quantity); err != nil {
		return nil, err
	}

	line, err := repo.GetLine(ctx, req.Owner, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read cart line: %w", err)
	}

	return line, nil
}

// RemoveLine deletes a line from the owner's cart.
func (s *cartService) RemoveLine(ctx context.Context, req *model.RemoveCartLineRequest) error {
	return s.repoFor(req.Owner).Remove(ctx, req.Owner, req.ProductID)
}

// GetLines retrieves the owner's cart.
func (s *cartService) GetLines(ctx context.Context, owner model.CartOwner) ([]model.CartLine, error) {
	return s.repoFor(owner).GetByOwner(ctx, owner)
}
