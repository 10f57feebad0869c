package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	portssvc "github.com/azrs7/Login/internal/core/ports/services"
	"github.com/azrs7/Login/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService opens ledger engines over a transaction log store.
type ledgerService struct {
	BaseService
	logs portsrepo.TransactionLogOpener
	now  func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithLedgerClock replaces the clock used to stamp new transactions.
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(logs portsrepo.TransactionLogOpener, options ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		logs: logs,
		now:  time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Open binds an engine to ownerEmail. The persisted log is the source of
// truth: the cached balance starts as the persisted sum.
func (s *ledgerService) Open(ctx context.Context, ownerEmail string) (portssvc.LedgerEngine, error) {
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: owner email is required", apperrors.ErrValidation)
	}

	log, err := s.logs.OpenTransactionLog(ctx, ownerEmail)
	if err != nil {
		s.LogError(ctx, err, "Failed to open transaction log", slog.String("owner", ownerEmail))
		return nil, storageError("failed to open transaction log", err)
	}

	state, err := log.State(ctx)
	if err != nil {
		if cerr := log.Close(); cerr != nil {
			s.LogError(ctx, cerr, "Failed to close transaction log", slog.String("owner", ownerEmail))
		}
		s.LogError(ctx, err, "Failed to load ledger state", slog.String("owner", ownerEmail))
		return nil, storageError("failed to load ledger state", err)
	}

	s.LogDebug(ctx, "Ledger opened",
		slog.String("owner", ownerEmail),
		slog.String("balance", state.Balance.String()),
		slog.Int64("transactions", state.Count))

	return &ledgerEngine{
		svc:           s,
		log:           log,
		owner:         ownerEmail,
		balance:       state.Balance,
		lastCreatedAt: state.LastCreatedAt,
	}, nil
}

// ledgerEngine is an open LedgerEngine bound to one owner.
type ledgerEngine struct {
	svc   *ledgerService
	log   portsrepo.TransactionLog
	owner string

	mu            sync.Mutex
	balance       decimal.Decimal
	lastCreatedAt time.Time
	closed        bool
}

var _ portssvc.LedgerEngine = (*ledgerEngine)(nil)

func (e *ledgerEngine) Owner() string { return e.owner }

func (e *ledgerEngine) Balance() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mustBeOpen()
	return e.balance
}

// Debit validates, in order, the amount range, the description length and the
// available balance, then appends a DEBIT transaction.
func (e *ledgerEngine) Debit(ctx context.Context, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mustBeOpen()

	if amount.Sign() <= 0 || amount.GreaterThan(domain.MaxDebitAmount) {
		return e.balance, apperrors.ErrInvalidAmount
	}
	if err := validateDescription(description); err != nil {
		return e.balance, err
	}
	if amount.GreaterThan(e.balance) {
		return e.balance, apperrors.ErrInsufficientBalance
	}
	return e.append(ctx, domain.Debit, amount, description)
}

// Credit validates the amount and the description length, then appends a CREDIT transaction.
func (e *ledgerEngine) Credit(ctx context.Context, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mustBeOpen()

	if amount.Sign() <= 0 {
		return e.balance, apperrors.ErrInvalidAmount
	}
	if err := validateDescription(description); err != nil {
		return e.balance, err
	}
	return e.append(ctx, domain.Credit, amount, description)
}

// append persists one transaction. The cached balance only moves once the
// store has confirmed the append, and it takes the store's persisted value.
func (e *ledgerEngine) append(ctx context.Context, kind domain.TransactionKind, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	createdAt := e.svc.now().UTC().Truncate(time.Microsecond)
	if createdAt.Before(e.lastCreatedAt) {
		createdAt = e.lastCreatedAt
	}

	txn := domain.Transaction{
		OwnerEmail:  e.owner,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   createdAt,
	}

	stored, persisted, err := e.log.Append(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			// Another writer moved the persisted balance under us.
			e.svc.LogWarn(ctx, "Debit rejected by store, resynchronising balance",
				slog.String("owner", e.owner),
				slog.String("cached", e.balance.String()),
				slog.String("persisted", persisted.String()))
			e.balance = persisted
			return e.balance, apperrors.ErrInsufficientBalance
		}
		e.svc.LogError(ctx, err, "Failed to append transaction",
			slog.String("owner", e.owner),
			slog.String("kind", string(kind)))
		return e.balance, storageError("failed to append transaction", err)
	}

	signed, err := accounting.CalculateSignedAmount(kind, amount)
	if err != nil {
		return e.balance, err
	}
	if expected := e.balance.Add(signed); !expected.Equal(persisted) {
		e.svc.LogWarn(ctx, "Cached balance diverged from persisted log",
			slog.String("owner", e.owner),
			slog.String("expected", expected.String()),
			slog.String("persisted", persisted.String()))
	}

	e.balance = persisted
	e.lastCreatedAt = stored.CreatedAt
	e.svc.LogInfo(ctx, "Transaction recorded",
		slog.String("owner", e.owner),
		slog.Int64("transaction_id", stored.ID),
		slog.String("kind", string(kind)),
		slog.String("amount", amount.String()))
	return e.balance, nil
}

func (e *ledgerEngine) History(ctx context.Context) ([]domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mustBeOpen()

	txns, err := e.log.List(ctx)
	if err != nil {
		e.svc.LogError(ctx, err, "Failed to list transactions", slog.String("owner", e.owner))
		return nil, storageError("failed to list transactions", err)
	}
	return txns, nil
}

func (e *ledgerEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.log.Close(); err != nil {
		return storageError("failed to close transaction log", err)
	}
	return nil
}

func (e *ledgerEngine) mustBeOpen() {
	if e.closed {
		panic("ledger: engine for " + e.owner + " used after Close")
	}
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return apperrors.ErrInvalidDescription
	}
	return nil
}
