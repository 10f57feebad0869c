package services

import "context"

// CredentialRegistrarSvc defines registration of new identities
type CredentialRegistrarSvc interface {
	// Register creates an identity with a freshly salted bcrypt hash of password.
	// It fails with apperrors.ErrDuplicateEmail when the email is taken.
	Register(ctx context.Context, name, email, password string) error
}

// CredentialVerifierSvc defines checks against stored credentials
type CredentialVerifierSvc interface {
	// Exists reports whether an identity with that exact email is registered.
	Exists(ctx context.Context, email string) (bool, error)

	// Verify reports whether password matches the hash stored for email.
	// Unknown emails fail closed.
	Verify(ctx context.Context, email, password string) (bool, error)
}

// CredentialSvcFacade combines all credential-related service interfaces
type CredentialSvcFacade interface {
	CredentialRegistrarSvc
	CredentialVerifierSvc
}
