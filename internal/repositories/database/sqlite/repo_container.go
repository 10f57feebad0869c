package sqlite

import (
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"gorm.io/gorm"
)

// NewRepositoryProvider exposes a SQLite database through the repository ports.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IdentityRepo:    newGormIdentityRepository(db),
		TransactionLogs: newGormTransactionLogOpener(db),
		Storage:         &BaseRepository{DB: db},
	}
}
