package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxInspirationImages caps how many reference photos a custom product
// request may carry. Extra uploads are dropped, not rejected.
const MaxInspirationImages = 3

// ProductRequest is a customer's custom-product commission.
type ProductRequest struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	InspirationImages []string  `json:"inspirationImages" db:"inspiration_images"`
	Budget            string    `json:"budget" db:"budget"`
	ExpectedDate      string    `json:"expectedDate" db:"expected_date"`
	ContactName       string    `json:"contactName" db:"contact_name"`
	ContactEmail      string    `json:"contactEmail" db:"contact_email"`
	ContactPhone      string    `json:"contactPhone" db:"contact_phone"`
	Gender            string    `json:"gender" db:"gender"`
	ClothingSize      string    `json:"clothingSize" db:"clothing_size"`
	AdditionalInfo    string    `json:"additionalInfo" db:"additional_info"`
	SubmittedAt       time.Time `json:"submittedAt" db:"submitted_at"`
}

// ProductRequestInput is the payload for submitting a request.
type ProductRequestInput struct {
	InspirationImages []string `json:"inspirationImages"`
	Budget            string   `json:"budget"`
	ExpectedDate      string   `json:"expectedDate"`
	ContactName       string   `json:"contactName"`
	ContactEmail      string   `json:"contactEmail"`
	ContactPhone      string   `json:"contactPhone"`
	Gender            string   `json:"gender"`
	ClothingSize      string   `json:"clothingSize"`
	AdditionalInfo    string   `json:"additionalInfo"`
}
