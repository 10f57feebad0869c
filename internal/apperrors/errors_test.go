package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageErrorMatchesKindAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("append: %w", NewStorageError("failed to append transaction", cause))

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "append: failed to append transaction: disk full", err.Error())

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrStorageUnavailable, appErr.Kind)
}

func TestDomainErrorsWrapGenericKinds(t *testing.T) {
	assert.ErrorIs(t, ErrDuplicateEmail, ErrDuplicate)
	assert.ErrorIs(t, ErrEmailNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInvalidAmount, ErrValidation)
	assert.ErrorIs(t, ErrInvalidDescription, ErrValidation)
}

func TestIsDomainError(t *testing.T) {
	for _, err := range []error{
		ErrDuplicateEmail,
		ErrEmailNotFound,
		ErrIncorrectPassword,
		ErrInvalidAmount,
		fmt.Errorf("debit: %w", ErrInvalidDescription),
		ErrInsufficientBalance,
	} {
		assert.True(t, IsDomainError(err), err.Error())
	}

	assert.False(t, IsDomainError(ErrStorageUnavailable))
	assert.False(t, IsDomainError(NewStorageError("x", ErrNotFound)))
	assert.False(t, IsDomainError(errors.New("boom")))
}
