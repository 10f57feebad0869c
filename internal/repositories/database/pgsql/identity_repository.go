package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/azrs7/Login/internal/models"
	"github.com/azrs7/Login/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

type PgxIdentityRepository struct {
	db *pgxpool.Pool
}

func newPgxIdentityRepository(db *pgxpool.Pool) portsrepo.IdentityRepositoryFacade {
	return &PgxIdentityRepository{db: db}
}

// Ensure PgxIdentityRepository implements portsrepo.IdentityRepositoryFacade
var _ portsrepo.IdentityRepositoryFacade = (*PgxIdentityRepository)(nil)

func (r *PgxIdentityRepository) SaveIdentity(ctx context.Context, identity domain.Identity) error {
	modelIdentity := mapping.ToModelIdentity(identity)
	query := `
        INSERT INTO identities (name, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query,
		modelIdentity.Name,
		modelIdentity.Email,
		modelIdentity.PasswordHash,
		modelIdentity.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("identity %s: %w", identity.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save identity: %w", err)
	}
	return nil
}

func (r *PgxIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM identities
		WHERE email = $1;
	`
	var modelIdentity models.Identity
	err := r.db.QueryRow(ctx, query, email).Scan(
		&modelIdentity.ID,
		&modelIdentity.Name,
		&modelIdentity.Email,
		&modelIdentity.PasswordHash,
		&modelIdentity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find identity by email %s: %w", email, err)
	}

	identity := mapping.ToDomainIdentity(modelIdentity)
	return &identity, nil
}

func (r *PgxIdentityRepository) IdentityExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM identities WHERE email = $1);`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check identity %s: %w", email, err)
	}
	return exists, nil
}
