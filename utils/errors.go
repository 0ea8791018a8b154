package utils

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes carried on every error response.
const (
	ErrCodeAuthentication = "AUTHENTICATION_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST_ERROR"
	ErrCodeInvalidVPA     = "INVALID_VPA"
	ErrCodeInvalidCard    = "INVALID_CARD"
	ErrCodeExpiredCard    = "EXPIRED_CARD"
	ErrCodeNotFound       = "NOT_FOUND_ERROR"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// AppError is an error that maps directly onto the gateway's wire format: an
// HTTP status, a machine-readable code and a human-readable description.
type AppError struct {
	Status      int    `json:"-"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Err         error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(status int, code, description string, err error) *AppError {
	return &AppError{
		Status:      status,
		Code:        code,
		Description: description,
		Err:         err,
	}
}

// BadRequestError creates a 400 error with the generic bad-request code
func BadRequestError(description string) *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeBadRequest, description, nil)
}

// InvalidVPAError creates a 400 error for a malformed virtual payment address
func InvalidVPAError() *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeInvalidVPA, "Invalid VPA format", nil)
}

// InvalidCardError creates a 400 error for a card failing the Luhn check
func InvalidCardError() *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeInvalidCard, "Invalid card number", nil)
}

// ExpiredCardError creates a 400 error for an expired card
func ExpiredCardError() *AppError {
	return NewAppError(http.StatusBadRequest, ErrCodeExpiredCard, "Card has expired", nil)
}

// NotFoundError creates a 404 error. Ownership mismatches use this too so
// the existence of other merchants' records is never revealed.
func NotFoundError(description string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, description, nil)
}

// AuthenticationError creates a 401 error for missing or bad credentials
func AuthenticationError() *AppError {
	return NewAppError(http.StatusUnauthorized, ErrCodeAuthentication, "Invalid API credentials", nil)
}

// InternalError creates a 500 error wrapping an unexpected failure
func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
}
