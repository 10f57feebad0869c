package services

import (
	"context"

	"github.com/azrs7/Login/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEngine maintains one identity's transaction log and its cached balance.
// An engine is bound to a single owner from Open until Close; using it after
// Close is a programming error and panics.
type LedgerEngine interface {
	// Owner returns the email the engine is bound to.
	Owner() string

	// Balance returns the cached balance, always equal to the persisted sum.
	Balance() decimal.Decimal

	// Debit withdraws amount, returning the new balance.
	Debit(ctx context.Context, amount decimal.Decimal, description string) (decimal.Decimal, error)

	// Credit deposits amount, returning the new balance.
	Credit(ctx context.Context, amount decimal.Decimal, description string) (decimal.Decimal, error)

	// History returns the full log, most recent first.
	History(ctx context.Context) ([]domain.Transaction, error)

	// Close releases the engine's storage handle. It is idempotent.
	Close() error
}

// LedgerSvcFacade opens ledger engines.
type LedgerSvcFacade interface {
	// Open binds an engine to ownerEmail and derives its balance from the persisted log.
	Open(ctx context.Context, ownerEmail string) (LedgerEngine, error)
}
