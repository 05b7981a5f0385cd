package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMalformedIdentifier = "MALFORMED_IDENTIFIER"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUnknownCustomer     = "UNKNOWN_CUSTOMER"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation detected by the core.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMalformedIdentifier = NewDomainError(ErrCodeMalformedIdentifier, "Identifier is not a valid UUID")
	ErrNotFound            = NewDomainError(ErrCodeNotFound, "Entity not found")
	ErrUnknownCustomer     = NewDomainError(ErrCodeUnknownCustomer, "Order references a customer that does not exist")
	ErrInvalidAmount       = NewDomainError(ErrCodeInvalidAmount, "Price amount must be a non-negative decimal")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Ordered amount must be greater than zero")
)
