package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentCustomer is the customer snapshot the payment provider reports.
type PaymentCustomer struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// PaymentCallback is the payload the hosted checkout widget reports after
// the customer finishes (or abandons) a payment.
type PaymentCallback struct {
	Status        string          `json:"status"`
	TransactionID int64           `json:"transaction_id"`
	TxRef         string          `json:"tx_ref"`
	FlwRef        string          `json:"flw_ref"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Customer      PaymentCustomer `json:"customer"`
}

// Completed reports whether the provider confirmed the payment.
func (c *PaymentCallback) Completed() bool {
	return c.Status == "completed"
}

// Payment is the persisted record of a successful payment callback.
// Rows are immutable once written.
type Payment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TransactionID int64     `json:"transactionId" db:"transaction_id"`
	TxRef         string    `json:"txRef" db:"tx_ref"`
	FlwRef        string    `json:"flwRef" db:"flw_ref"`
	Amount        float64   `json:"amount" db:"amount"`
	Currency      string    `json:"currency" db:"currency"`
	Status        string    `json:"status" db:"status"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	CustomerEmail string    `json:"customerEmail" db:"customer_email"`
	PhoneNumber   string    `json:"phoneNumber" db:"phone_number"`
	PaidAt        time.Time `json:"paidAt" db:"paid_at"`
}
