package service

import (
	"context"

	"moshood-fashion/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Search retrieves products matching a name/category query.
	Search(ctx context.Context, query string, limit, offset int) ([]model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, input *model.ProductInput) (*model.Product, error)

	// Update edits an existing product.
	Update(ctx context.Context, id uuid.UUID, input *model.ProductInput) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines cart mutations. The backing store is chosen by the
// owner identity: database for signed-in customers, in-process for guests.
type CartService interface {
	// AddLine puts a product in the owner's cart, incrementing the
	// quantity when a line for the product already exists.
	AddLine(ctx context.Context, req *model.AddCartLineRequest) (*model.CartLine, error)

	// SetQuantity changes a line's quantity, clamped to at least 1.
	SetQuantity(ctx context.Context, req *model.UpdateCartLineRequest) (*model.CartLine, error)

	// RemoveLine deletes a line from the owner's cart.
	RemoveLine(ctx context.Context, req *model.RemoveCartLineRequest) error

	// GetLines retrieves the owner's cart.
	GetLines(ctx context.Context, owner model.CartOwner) ([]model.CartLine, error)
}

// CheckoutService sequences the post-payment persistence steps.
type CheckoutService interface {
	// CompleteCheckout handles a payment-widget callback. A non-completed
	// status produces no records; a completed one triggers the order
	// insert, payment insert and confirmation email as independent,
	// non-atomic steps.
	CompleteCheckout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResult, error)
}

// OrderService defines order reads and lifecycle transitions.
type OrderService interface {
	// GetByID retrieves an order.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByEmail retrieves a customer's order history.
	GetByEmail(ctx context.Context, email string) ([]model.Order, error)

	// GetAll retrieves all orders for the admin console.
	GetAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus applies an admin status transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	// Cancel applies a customer cancellation. It is rejected only when
	// the order is already cancelled.
	Cancel(ctx context.Context, id uuid.UUID, email string) error
}

// PaymentService defines payment record operations.
type PaymentService interface {
	// Record persists a payment callback as an immutable payment row.
	Record(ctx context.Context, callback *model.PaymentCallback) (*model.Payment, error)

	// GetAll retrieves payment records for the admin console.
	GetAll(ctx context.Context, limit, offset int) ([]model.Payment, error)
}

// ContactService defines contact profile operations.
type ContactService interface {
	// Save inserts a new profile row (submissions never update in place).
	Save(ctx context.Context, profile *model.ContactProfile) (*model.ContactProfile, error)

	// GetByEmail retrieves the most recent profile for an email.
	GetByEmail(ctx context.Context, email string) (*model.ContactProfile, error)
}

// SubscriptionService defines newsletter subscription operations.
type SubscriptionService interface {
	// Subscribe records the email and sends the welcome message.
	Subscribe(ctx context.Context, email string) (*model.Subscription, error)

	// GetAll retrieves all subscription rows for the admin console.
	GetAll(ctx context.Context) ([]model.Subscription, error)
}

// NotificationService fans a marketing digest out to subscribers.
type NotificationService interface {
	// Dispatch sends the digest for the given mode to every distinct
	// subscriber address and returns how many emails went out.
	Dispatch(ctx context.Context, mode model.NotificationMode) (int, error)
}

// RequestService defines custom product request operations.
type RequestService interface {
	// Create submits a request for the user, keeping at most
	// model.MaxInspirationImages reference photos.
	Create(ctx context.Context, userID uuid.UUID, input *model.ProductRequestInput) (*model.ProductRequest, error)

	// GetByUser retrieves the user's requests.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.ProductRequest, error)

	// GetAll retrieves all requests for the admin console.
	GetAll(ctx context.Context, limit, offset int) ([]model.ProductRequest, error)

	// UpdateAdditionalInfo edits the free-text notes; owner only.
	UpdateAdditionalInfo(ctx context.Context, id, userID uuid.UUID, info string) error

	// Delete removes a request; owner only.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// UserService defines account operations.
type UserService interface {
	// Register creates an account with a hashed password.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// List returns account summaries for the privileged admin listing.
	List(ctx context.Context) ([]model.UserSummary, error)
}

// StatsService aggregates the admin overview metrics.
type StatsService interface {
	// Overview runs the metric queries concurrently and collects them.
	Overview(ctx context.Context) (*model.Overview, error)
}
