package repository

import (
	"context"
	"sync"
	"time"

	"moshood-fashion/internal/model"

	"github.com/google/uuid"
)

// memoryCartRepository implements CartRepository for guests. Lines live
// in process memory keyed by the client-supplied guest token; they are
// never merged into a signed-in cart.
type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]map[uuid.UUID]model.CartLine
}

// NewMemoryCartRepository creates a new in-process guest cart repository.
func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepository{
		carts: make(map[string]map[uuid.UUID]model.CartLine),
	}
}

// Add inserts a new cart line for the guest.
func (r *memoryCartRepository) Add(ctx context.Context, line *model.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.carts[line.GuestToken] == nil {
		r.carts[line.GuestToken] = make(map[uuid.UUID]model.CartLine)
	}
	r.carts[line.GuestToken][line.ProductID] = *line
	return nil
}

// GetLine retrieves the guest's line for a product.
func (r *memoryCartRepository) GetLine(ctx context.Context, owner model.CartOwner, productID uuid.UUID) (*model.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	line, ok := r.carts[owner.GuestToken][productID]
	if !ok {
		return nil, nil
	}
	return &line, nil
}

// GetByOwner retrieves all of the guest's cart lines.
func (r *memoryCartRepository) GetByOwner(ctx context.Context, owner model.CartOwner) ([]model.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := r.carts[owner.GuestToken]
	lines := make([]model.CartLine, 0, len(cart))
	for _, line := range cart {
		lines = append(lines, line)
	}
	return lines, nil
}

// UpdateQuantity sets the quantity of the guest's line for a product.
func (r *memoryCartRepository) UpdateQuantity(ctx context.Context, owner model.CartOwner, productID uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.carts[owner.GuestToken][productID]
	if !ok {
		return model.ErrProductNotFound
	}
	line.Quantity = quantity
	line.UpdatedAt = time.Now()
	r.carts[owner.GuestToken][productID] = line
	return nil
}

// Remove deletes the guest's line for a product.
func (r *memoryCartRepository) Remove(ctx context.Context, owner model.CartOwner, productID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts[owner.GuestToken], productID)
	return nil
}
