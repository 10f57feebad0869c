package sqlite

import (
	"context"
	"fmt"

	"github.com/azrs7/Login/internal/models"
	"github.com/azrs7/Login/pkg/database"
	"gorm.io/gorm"
)

// BaseRepository provides the storage lifecycle for the SQLite backend
type BaseRepository struct {
	DB *gorm.DB
}

// Init creates missing tables and indexes. AutoMigrate only adds, so running it
// against an existing database is a no-op.
func (r *BaseRepository) Init(ctx context.Context) error {
	if err := r.DB.WithContext(ctx).AutoMigrate(
		&models.Identity{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *BaseRepository) Close() error {
	return database.CloseSQLite(r.DB)
}
