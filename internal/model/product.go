package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item in the storefront catalogue.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	Description string    `json:"description" db:"description"`
	Images      []string  `json:"images" db:"images"`
	Quality     string    `json:"quality" db:"quality"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Quality     string   `json:"quality"`
}

// Validate checks the catalogue invariants.
func (p *ProductInput) Validate() error {
	if p.Name == "" {
		return NewDomainError(ErrCodeMissingField, "product name is required")
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
