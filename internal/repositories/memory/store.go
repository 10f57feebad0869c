package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/azrs7/Login/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Store is an in-memory implementation of the identity and transaction log
// repositories. A single mutex guards all state, so appends are serialised.
type Store struct {
	mu           sync.Mutex
	identities   map[string]domain.Identity
	transactions map[string][]domain.Transaction // per owner, ascending ID
	nextID       int64
	openHandles  int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		identities:   make(map[string]domain.Identity),
		transactions: make(map[string][]domain.Transaction),
	}
}

// NewRepositoryProvider exposes a fresh Store through the repository ports.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return store.Provider()
}

// Provider exposes s through the repository ports.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IdentityRepo:    s,
		TransactionLogs: s,
		Storage:         s,
	}
}

// Compile-time checks
var (
	_ portsrepo.IdentityRepositoryFacade = (*Store)(nil)
	_ portsrepo.TransactionLogOpener     = (*Store)(nil)
	_ portsrepo.Storage                  = (*Store)(nil)
)

func (s *Store) Init(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }

// OpenHandles returns the number of transaction log handles not yet closed.
func (s *Store) OpenHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openHandles
}

func (s *Store) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, ok := s.identities[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &identity, nil
}

func (s *Store) IdentityExists(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.identities[email]
	return ok, nil
}

func (s *Store) SaveIdentity(ctx context.Context, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.identities[identity.Email]; ok {
		return fmt.Errorf("identity %s: %w", identity.Email, apperrors.ErrDuplicate)
	}
	s.identities[identity.Email] = identity
	return nil
}

func (s *Store) OpenTransactionLog(ctx context.Context, ownerEmail string) (portsrepo.TransactionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openHandles++
	return &transactionLog{store: s, owner: ownerEmail}, nil
}

// transactionLog is an owner-scoped handle on a Store.
type transactionLog struct {
	store     *Store
	owner     string
	closeOnce sync.Once
}

func (l *transactionLog) Owner() string { return l.owner }

func (l *transactionLog) State(ctx context.Context) (domain.LedgerState, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.stateLocked()
}

func (l *transactionLog) stateLocked() (domain.LedgerState, error) {
	txns := l.store.transactions[l.owner]
	balance, err := accounting.CalculateBalance(txns)
	if err != nil {
		return domain.LedgerState{}, err
	}
	state := domain.LedgerState{Balance: balance, Count: int64(len(txns))}
	if n := len(txns); n > 0 {
		state.LastID = txns[n-1].ID
		state.LastCreatedAt = txns[n-1].CreatedAt
	}
	return state, nil
}

func (l *transactionLog) List(ctx context.Context) ([]domain.Transaction, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	txns := l.store.transactions[l.owner]
	out := make([]domain.Transaction, len(txns))
	for i, txn := range txns {
		out[len(txns)-1-i] = txn
	}
	return out, nil
}

func (l *transactionLog) Append(ctx context.Context, txn domain.Transaction) (domain.Transaction, decimal.Decimal, error) {
	// The balance check and the insert share one critical section.
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	state, err := l.stateLocked()
	if err != nil {
		return domain.Transaction{}, decimal.Zero, err
	}
	signed, err := accounting.CalculateSignedAmount(txn.Kind, txn.Amount)
	if err != nil {
		return domain.Transaction{}, state.Balance, err
	}
	newBalance := state.Balance.Add(signed)
	if newBalance.IsNegative() {
		return domain.Transaction{}, state.Balance, apperrors.ErrInsufficientBalance
	}

	l.store.nextID++
	txn.ID = l.store.nextID
	txn.OwnerEmail = l.owner
	l.store.transactions[l.owner] = append(l.store.transactions[l.owner], txn)
	return txn, newBalance, nil
}

func (l *transactionLog) Close() error {
	l.closeOnce.Do(func() {
		l.store.mu.Lock()
		l.store.openHandles--
		l.store.mu.Unlock()
	})
	return nil
}
