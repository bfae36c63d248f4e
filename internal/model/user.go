package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a customer account.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Disabled     bool      `json:"isDisabled" db:"disabled"`
	CreatedAt    time.Time `json:"joinedDate" db:"created_at"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token issued on successful sign-in.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserSummary is the shape the privileged admin listing returns.
type UserSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	JoinedDate time.Time `json:"joinedDate"`
	OrderCount int       `json:"orderCount"`
	IsDisabled bool      `json:"isDisabled"`
}
