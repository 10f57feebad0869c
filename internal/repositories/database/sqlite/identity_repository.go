package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/azrs7/Login/internal/models"
	"github.com/azrs7/Login/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormIdentityRepository struct {
	db *gorm.DB
}

func newGormIdentityRepository(db *gorm.DB) portsrepo.IdentityRepositoryFacade {
	return &GormIdentityRepository{db: db}
}

// Ensure GormIdentityRepository implements portsrepo.IdentityRepositoryFacade
var _ portsrepo.IdentityRepositoryFacade = (*GormIdentityRepository)(nil)

func (r *GormIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var modelIdentity models.Identity
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&modelIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find identity by email %s: %w", email, err)
	}
	identity := mapping.ToDomainIdentity(modelIdentity)
	return &identity, nil
}

func (r *GormIdentityRepository) IdentityExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Identity{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check identity %s: %w", email, err)
	}
	return count > 0, nil
}

func (r *GormIdentityRepository) SaveIdentity(ctx context.Context, identity domain.Identity) error {
	modelIdentity := mapping.ToModelIdentity(identity)
	err := r.db.WithContext(ctx).Create(&modelIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("identity %s: %w", identity.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save identity: %w", err)
	}
	return nil
}
