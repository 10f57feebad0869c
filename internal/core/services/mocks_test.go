package services_test

import (
	"context"

	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock IdentityRepository ---
type MockIdentityRepository struct {
	mock.Mock
	SaveIdentityFn func(ctx context.Context, identity domain.Identity) error
}

func (m *MockIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	args := m.Called(ctx, email)
	var identity *domain.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityRepository) IdentityExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityRepository) SaveIdentity(ctx context.Context, identity domain.Identity) error {
	if m.SaveIdentityFn != nil {
		return m.SaveIdentityFn(ctx, identity)
	}
	args := m.Called(ctx, identity)
	return args.Error(0)
}

var _ portsrepo.IdentityRepositoryFacade = (*MockIdentityRepository)(nil)

// --- Mock TransactionLog ---
type MockTransactionLog struct {
	mock.Mock
	owner string
}

func (m *MockTransactionLog) Owner() string { return m.owner }

func (m *MockTransactionLog) State(ctx context.Context) (domain.LedgerState, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerState), args.Error(1)
}

func (m *MockTransactionLog) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionLog) Append(ctx context.Context, txn domain.Transaction) (domain.Transaction, decimal.Decimal, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(domain.Transaction), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockTransactionLog) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ portsrepo.TransactionLog = (*MockTransactionLog)(nil)

// --- Mock TransactionLogOpener ---
type MockTransactionLogOpener struct {
	mock.Mock
}

func (m *MockTransactionLogOpener) OpenTransactionLog(ctx context.Context, ownerEmail string) (portsrepo.TransactionLog, error) {
	args := m.Called(ctx, ownerEmail)
	var log portsrepo.TransactionLog
	if args.Get(0) != nil {
		log = args.Get(0).(portsrepo.TransactionLog)
	}
	return log, args.Error(1)
}
