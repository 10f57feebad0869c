package repositories

import (
	"context"

	"github.com/azrs7/Login/internal/core/domain"
)

// IdentityReader defines read operations for identity data
type IdentityReader interface {
	// FindIdentityByEmail retrieves an identity by its exact email.
	// It returns apperrors.ErrNotFound when no identity has that email.
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)

	// IdentityExists reports whether an identity with that exact email exists.
	IdentityExists(ctx context.Context, email string) (bool, error)
}

// IdentityWriter defines write operations for identity data
type IdentityWriter interface {
	// SaveIdentity persists a new identity. A second identity with the same
	// email is rejected atomically with apperrors.ErrDuplicate.
	SaveIdentity(ctx context.Context, identity domain.Identity) error
}

// IdentityRepositoryFacade combines all identity-related repository interfaces
type IdentityRepositoryFacade interface {
	IdentityReader
	IdentityWriter
}
