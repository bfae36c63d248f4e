package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is one subscribe-form submission. No uniqueness is
// enforced at write time; duplicates are collapsed when notifications go
// out.
type Subscription struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	SubscriptionDate time.Time `json:"subscriptionDate" db:"subscription_date"`
}

// ContactProfile holds the shipping and contact details collected before
// checkout. Submissions always insert a fresh row; reads return the most
// recent row for the email.
type ContactProfile struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerEmail string    `json:"customer_email" db:"customer_email"`
	CustomerPhone string    `json:"customer_phone" db:"customer_phone"`
	Address       string    `json:"address" db:"address"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
