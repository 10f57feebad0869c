package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	portssvc "github.com/azrs7/Login/internal/core/ports/services"
	"github.com/azrs7/Login/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// credentialService implements the CredentialSvcFacade interface
type credentialService struct {
	BaseService
	identityRepo portsrepo.IdentityRepositoryFacade
	bcryptCost   int
	now          func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// CredentialOption is a functional option for configuring the credential service
type CredentialOption func(*credentialService)

// WithBcryptCost sets the adaptive cost used for new password hashes.
func WithBcryptCost(cost int) CredentialOption {
	return func(s *credentialService) {
		s.bcryptCost = cost
	}
}

// WithCredentialClock replaces the clock used for identity creation times.
func WithCredentialClock(now func() time.Time) CredentialOption {
	return func(s *credentialService) {
		s.now = now
	}
}

// NewCredentialService creates a new credential service with the provided options
func NewCredentialService(identityRepo portsrepo.IdentityRepositoryFacade, options ...CredentialOption) portssvc.CredentialSvcFacade {
	svc := &credentialService{
		identityRepo: identityRepo,
		bcryptCost:   bcrypt.DefaultCost,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure credentialService implements the CredentialSvcFacade interface
var _ portssvc.CredentialSvcFacade = (*credentialService)(nil)

func (s *credentialService) Register(ctx context.Context, name, email, password string) error {
	exists, err := s.identityRepo.IdentityExists(ctx, email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check identity existence", slog.String("email", email))
		return storageError("failed to check identity existence", err)
	}
	if exists {
		return apperrors.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		// bcrypt refuses passwords longer than 72 bytes
		return fmt.Errorf("%w: failed to hash password: %v", apperrors.ErrValidation, err)
	}

	identity := domain.Identity{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.identityRepo.SaveIdentity(ctx, identity); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race against a concurrent registration of the same email.
			return apperrors.ErrDuplicateEmail
		}
		s.LogError(ctx, err, "Failed to save identity", slog.String("email", email))
		return storageError("failed to save identity", err)
	}

	s.LogInfo(ctx, "Identity registered", slog.String("email", email))
	return nil
}

func (s *credentialService) Exists(ctx context.Context, email string) (bool, error) {
	exists, err := s.identityRepo.IdentityExists(ctx, email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check identity existence", slog.String("email", email))
		return false, storageError("failed to check identity existence", err)
	}
	return exists, nil
}

func (s *credentialService) Verify(ctx context.Context, email, password string) (bool, error) {
	identity, err := s.identityRepo.FindIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordHash(password, s.unknownIdentityHash())
			return false, nil
		}
		s.LogError(ctx, err, "Failed to load identity", slog.String("email", email))
		return false, storageError("failed to load identity", err)
	}
	return utils.CheckPasswordHash(password, identity.PasswordHash), nil
}

// unknownIdentityHash returns a hash of a random password, computed once per
// service. Verify compares against it when an email is unknown, so it costs
// one bcrypt comparison either way.
func (s *credentialService) unknownIdentityHash() string {
	s.dummyOnce.Do(func() {
		password, err := utils.GenerateSecureRandomString(16)
		if err != nil {
			password = "unknown-identity"
		}
		hash, err := utils.HashPassword(password, s.bcryptCost)
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

// storageError wraps err as apperrors.ErrStorageUnavailable unless it already is.
func storageError(msg string, err error) error {
	if errors.Is(err, apperrors.ErrStorageUnavailable) {
		return err
	}
	return apperrors.NewStorageError(msg, err)
}
