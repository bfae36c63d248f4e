package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeRequestNotFound  = "REQUEST_NOT_FOUND"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeInvalidStock     = "INVALID_STOCK"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeAlreadyCancelled = "ALREADY_CANCELLED"
	ErrCodeEmailTaken       = "EMAIL_TAKEN"
	ErrCodeBadCredentials   = "BAD_CREDENTIALS"
	ErrCodeNotOwner         = "NOT_OWNER"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside the message so handlers can
// map business failures to HTTP statuses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrRequestNotFound  = NewDomainError(ErrCodeRequestNotFound, "Product request not found")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPrice     = NewDomainError(ErrCodeInvalidPrice, "Price must be greater than zero")
	ErrInvalidStock     = NewDomainError(ErrCodeInvalidStock, "Stock cannot be negative")
	ErrInvalidStatus    = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrAlreadyCancelled = NewDomainError(ErrCodeAlreadyCancelled, "Order is already cancelled")
	ErrEmailTaken       = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrBadCredentials   = NewDomainError(ErrCodeBadCredentials, "Invalid email or password")
	ErrNotOwner         = NewDomainError(ErrCodeNotOwner, "Resource belongs to another user")
)
