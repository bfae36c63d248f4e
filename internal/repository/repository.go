package repository

import (
	"context"

	"moshood-fashion/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Search retrieves products whose name or category matches the query.
	Search(ctx context.Context, query string, limit, offset int) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces the stored fields of an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartRepository defines the interface for cart line storage. Two
// implementations exist: the database-backed one for signed-in customers
// and the in-process one for guests.
type CartRepository interface {
	// Add inserts a new cart line for the owner.
	Add(ctx context.Context, line *model.CartLine) error

	// GetLine retrieves the owner's line for a product.
	// Returns (nil, nil) when no line exists.
	GetLine(ctx context.Context, owner model.CartOwner, productID uuid.UUID) (*model.CartLine, error)

	// GetByOwner retrieves all of the owner's cart lines.
	GetByOwner(ctx context.Context, owner model.CartOwner) ([]model.CartLine, error)

	// UpdateQuantity sets the quantity of the owner's line for a product.
	UpdateQuantity(ctx context.Context, owner model.CartOwner, productID uuid.UUID, quantity int) error

	// Remove deletes the owner's line for a product.
	Remove(ctx context.Context, owner model.CartOwner, productID uuid.UUID) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create inserts a new order with its line snapshots.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by its ID.
	// Returns (nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByEmail retrieves a customer's orders, newest first.
	GetByEmail(ctx context.Context, email string) ([]model.Order, error)

	// GetAll retrieves all orders with pagination, newest first.
	GetAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus sets the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}

// PaymentRepository defines the interface for payment records. Records
// are write-once.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(ctx context.Context, payment *model.Payment) error

	// GetAll retrieves all payment records, newest first.
	GetAll(ctx context.Context, limit, offset int) ([]model.Payment, error)
}

// RequestRepository defines the interface for custom product requests.
type RequestRepository interface {
	// Create inserts a new product request.
	Create(ctx context.Context, request *model.ProductRequest) error

	// GetByID retrieves a request by its ID.
	// Returns (nil, nil) when the request does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductRequest, error)

	// GetByUser retrieves a customer's requests, newest first.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.ProductRequest, error)

	// GetAll retrieves all requests, newest first.
	GetAll(ctx context.Context, limit, offset int) ([]model.ProductRequest, error)

	// UpdateAdditionalInfo replaces the free-text notes on a request.
	UpdateAdditionalInfo(ctx context.Context, id uuid.UUID, info string) error

	// Delete removes a request.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubscriptionRepository defines the interface for newsletter
// subscriptions. Rows are insert-only; deduplication happens at read time.
type SubscriptionRepository interface {
	// Create inserts a new subscription row.
	Create(ctx context.Context, sub *model.Subscription) error

	// GetAll retrieves every subscription row, duplicates included.
	GetAll(ctx context.Context) ([]model.Subscription, error)
}

// ContactRepository defines the interface for contact profiles. Writes
// always insert; reads return the most recent row for an email.
type ContactRepository interface {
	// Create inserts a new contact profile row.
	Create(ctx context.Context, profile *model.ContactProfile) error

	// GetByEmail retrieves the most recent profile for an email.
	// Returns (nil, nil) when no profile exists.
	GetByEmail(ctx context.Context, email string) (*model.ContactProfile, error)
}

// UserRepository defines the interface for customer accounts.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email.
	// Returns (nil, nil) when no account exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID.
	// Returns (nil, nil) when no account exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetAll retrieves all users, newest first.
	GetAll(ctx context.Context) ([]model.User, error)
}

// StatsRepository defines the aggregate reads backing the admin overview.
// Each metric is an independent count/sum query.
type StatsRepository interface {
	// CountOrders counts all orders.
	CountOrders(ctx context.Context) (int64, error)

	// CountOrdersByStatus counts orders whose status is in the given set.
	CountOrdersByStatus(ctx context.Context, statuses ...model.OrderStatus) (int64, error)

	// CountRequests counts all product requests.
	CountRequests(ctx context.Context) (int64, error)

	// CountUsers counts all accounts.
	CountUsers(ctx context.Context) (int64, error)

	// SumPayments sums all payment amounts with no currency normalisation.
	SumPayments(ctx context.Context) (float64, error)
}
