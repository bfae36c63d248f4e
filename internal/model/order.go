package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Admin transitions are
// unconstrained; the only guard anywhere is that a customer cannot cancel
// an order that is already cancelled.
type OrderStatus string

const (
	// StatusApproved is the status checkout writes at creation time.
	StatusApproved  OrderStatus = "approved"
	StatusPending   OrderStatus = "Pending"
	StatusSent      OrderStatus = "Sent"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusSent, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a snapshot of a cart line at checkout time. Orders keep
// their own copies so later catalogue edits do not rewrite history.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// Order represents a customer order.
type Order struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Items         []OrderItem `json:"orderItems" db:"order_items"`
	CustomerName  string      `json:"customerName" db:"customer_name"`
	CustomerEmail string      `json:"customerEmail" db:"customer_email"`
	CustomerPhone string      `json:"customerPhone" db:"customer_phone"`
	Address       string      `json:"address" db:"address"`
	OrderDate     string      `json:"orderDate" db:"order_date"`
	TotalAmount   float64     `json:"totalAmount" db:"total_amount"`
	AmountPaid    float64     `json:"amountPaid" db:"amount_paid"`
	IsPaid        bool        `json:"isPaid" db:"is_paid"`
	Status        OrderStatus `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
}

// UpdateOrderStatusRequest is the admin payload for a status transition.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
