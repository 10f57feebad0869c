package sqlite

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/azrs7/Login/internal/models"
	"github.com/azrs7/Login/internal/utils/accounting"
	"github.com/azrs7/Login/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GormTransactionLogOpener struct {
	db *gorm.DB
}

func newGormTransactionLogOpener(db *gorm.DB) portsrepo.TransactionLogOpener {
	return &GormTransactionLogOpener{db: db}
}

var _ portsrepo.TransactionLogOpener = (*GormTransactionLogOpener)(nil)

func (o *GormTransactionLogOpener) OpenTransactionLog(ctx context.Context, ownerEmail string) (portsrepo.TransactionLog, error) {
	return &GormTransactionLog{db: o.db, owner: ownerEmail}, nil
}

// GormTransactionLog is an owner-scoped handle on the transactions table.
// It shares the database's connection pool, so Close only invalidates the handle.
type GormTransactionLog struct {
	db     *gorm.DB
	owner  string
	closed atomic.Bool
}

var _ portsrepo.TransactionLog = (*GormTransactionLog)(nil)

func (l *GormTransactionLog) Owner() string { return l.owner }

func (l *GormTransactionLog) Close() error {
	l.closed.Store(true)
	return nil
}

func (l *GormTransactionLog) checkOpen() error {
	if l.closed.Load() {
		return fmt.Errorf("transaction log for %s is closed", l.owner)
	}
	return nil
}

func (l *GormTransactionLog) State(ctx context.Context) (domain.LedgerState, error) {
	if err := l.checkOpen(); err != nil {
		return domain.LedgerState{}, err
	}
	return loadState(l.db.WithContext(ctx), l.owner)
}

// loadState sums the owner's log in Go; amounts are stored as text, and SQLite
// would do SUM in floating point.
func loadState(db *gorm.DB, owner string) (domain.LedgerState, error) {
	var rows []models.Transaction
	err := db.Select("id", "kind", "amount", "created_at").
		Where("owner_email = ?", owner).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return domain.LedgerState{}, fmt.Errorf("failed to load transactions for %s: %w", owner, err)
	}

	balance, err := accounting.CalculateBalance(mapping.ToDomainTransactionSlice(rows))
	if err != nil {
		return domain.LedgerState{}, err
	}
	state := domain.LedgerState{Balance: balance, Count: int64(len(rows))}
	if n := len(rows); n > 0 {
		state.LastID = rows[n-1].ID
		state.LastCreatedAt = rows[n-1].CreatedAt.UTC()
	}
	return state, nil
}

func (l *GormTransactionLog) List(ctx context.Context) ([]domain.Transaction, error) {
	if err := l.checkOpen(); err != nil {
		return nil, err
	}
	var rows []models.Transaction
	err := l.db.WithContext(ctx).
		Where("owner_email = ?", l.owner).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", l.owner, err)
	}
	return mapping.ToDomainTransactionSlice(rows), nil
}

// Append checks the persisted balance and inserts within one immediate
// transaction, which holds SQLite's write lock for its whole duration.
func (l *GormTransactionLog) Append(ctx context.Context, txn domain.Transaction) (domain.Transaction, decimal.Decimal, error) {
	if err := l.checkOpen(); err != nil {
		return domain.Transaction{}, decimal.Zero, err
	}
	txn.OwnerEmail = l.owner

	var (
		stored     domain.Transaction
		newBalance decimal.Decimal
		current    decimal.Decimal
	)
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := loadState(tx, l.owner)
		if err != nil {
			return err
		}
		current = state.Balance

		signed, err := accounting.CalculateSignedAmount(txn.Kind, txn.Amount)
		if err != nil {
			return err
		}
		newBalance = state.Balance.Add(signed)
		if newBalance.IsNegative() {
			return apperrors.ErrInsufficientBalance
		}

		row := mapping.ToModelTransaction(txn)
		row.ID = 0
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert transaction for %s: %w", l.owner, err)
		}
		stored = mapping.ToDomainTransaction(row)
		return nil
	})
	if err != nil {
		return domain.Transaction{}, current, err
	}
	return stored, newBalance, nil
}
