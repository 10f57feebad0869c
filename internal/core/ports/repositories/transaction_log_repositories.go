package repositories

import (
	"context"

	"github.com/azrs7/Login/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionLogReader defines read operations scoped to one owner's log
type TransactionLogReader interface {
	// State aggregates the persisted log: derived balance, row count and the latest entry.
	State(ctx context.Context) (domain.LedgerState, error)

	// List returns every transaction of the owner, most recent (highest ID) first.
	List(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionLogWriter defines the single write operation of an append-only log
type TransactionLogWriter interface {
	// Append assigns an ID to txn and persists it, returning the stored
	// transaction and the owner's persisted balance after the append.
	//
	// The balance check and the insert form one atomic unit per owner: a debit
	// that would make the persisted balance negative is rejected with
	// apperrors.ErrInsufficientBalance, and the returned balance is then the
	// current persisted one.
	Append(ctx context.Context, txn domain.Transaction) (domain.Transaction, decimal.Decimal, error)
}

// TransactionLog is an open, owner-scoped handle to the transaction log.
// Close releases whatever storage resources the handle holds.
type TransactionLog interface {
	TransactionLogReader
	TransactionLogWriter
	Owner() string
	Close() error
}

// TransactionLogOpener opens owner-scoped transaction log handles.
type TransactionLogOpener interface {
	OpenTransactionLog(ctx context.Context, ownerEmail string) (TransactionLog, error)
}
