package pgsql

import (
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider exposes a PostgreSQL pool through the repository ports.
// databaseURL is used by Init to run migrations.
func NewRepositoryProvider(dbPool *pgxpool.Pool, databaseURL string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IdentityRepo:    newPgxIdentityRepository(dbPool),
		TransactionLogs: newPgxTransactionLogOpener(dbPool),
		Storage:         &BaseRepository{Pool: dbPool, DatabaseURL: databaseURL},
	}
}
