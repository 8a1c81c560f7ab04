package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateUnavailable indicates that the exchange-rate provider was
// unreachable, errored, or did not carry the requested currency pair.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// AppError carries a status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error that matches ErrValidation via errors.Is.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
