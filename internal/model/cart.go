package model

import (
	"time"

	"github.com/google/uuid"
)

// CartOwner identifies whose cart an operation targets. Authenticated
// owners carry a user ID and email and are served from the database;
// guests carry only a client-supplied token and are served from the
// in-process store. The two backends are never merged.
type CartOwner struct {
	UserID     *uuid.UUID `json:"userId,omitempty"`
	Email      string     `json:"email,omitempty"`
	GuestToken string     `json:"guestToken,omitempty"`
}

// Authenticated reports whether the owner has a signed-in identity.
func (o CartOwner) Authenticated() bool {
	return o.UserID != nil
}

// CartLine represents one product entry in a cart. Price, name, category
// and image are snapshots taken when the line was added.
type CartLine struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	// GuestToken is set only on guest lines; it never leaves the process.
	GuestToken string     `json:"-" db:"-"`
	UserID     *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	Email      string     `json:"email" db:"email"`
	Name       string     `json:"name" db:"name"`
	Category   string     `json:"category" db:"category"`
	Image      string     `json:"image" db:"image"`
	Price      float64    `json:"price" db:"price"`
	Quantity   int        `json:"quantity" db:"quantity"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}

// AddCartLineRequest is the payload for adding a product to a cart.
type AddCartLineRequest struct {
	Owner     CartOwner `json:"owner"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartLineRequest is the payload for changing a line quantity.
type UpdateCartLineRequest struct {
	Owner     CartOwner `json:"owner"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// RemoveCartLineRequest is the payload for removing a line.
type RemoveCartLineRequest struct {
	Owner     CartOwner `json:"owner"`
	ProductID uuid.UUID `json:"productId"`
}
