package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Domain errors reported to the shell. They are expected and recoverable.
var (
	ErrDuplicateEmail      = fmt.Errorf("email already registered: %w", ErrDuplicate)
	ErrEmailNotFound       = fmt.Errorf("email not registered: %w", ErrNotFound)
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrInvalidAmount       = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrInvalidDescription  = fmt.Errorf("invalid description: %w", ErrValidation)
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ErrStorageUnavailable indicates that the underlying persistence layer failed.
// The operation that observed it has been aborted without partial mutation.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError attaches a message and an underlying cause to one of the sentinel
// errors above. errors.Is matches both the kind and the cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

// NewAppError creates an AppError of the given kind.
func NewAppError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewStorageError wraps a persistence failure as ErrStorageUnavailable.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(ErrStorageUnavailable, message, err)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsDomainError reports whether err is one of the recoverable domain errors
// the shell renders as a message rather than a failure.
func IsDomainError(err error) bool {
	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrEmailNotFound),
		errors.Is(err, ErrIncorrectPassword),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidDescription),
		errors.Is(err, ErrInsufficientBalance):
		return true
	}
	return false
}
