package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	"github.com/azrs7/Login/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind domain.TransactionKind, amount int64) domain.Transaction {
	return domain.Transaction{
		Kind:      kind,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestStore_Identities(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	exists, err := store.IdentityExists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.FindIdentityByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	identity := domain.Identity{Name: "Alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, store.SaveIdentity(ctx, identity))

	found, err := store.FindIdentityByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, identity, *found)

	err = store.SaveIdentity(ctx, identity)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestStore_TransactionLog(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	log, err := store.OpenTransactionLog(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, store.OpenHandles())
	assert.Equal(t, "a@x.com", log.Owner())

	stored, balance, err := log.Append(ctx, txn(domain.Credit, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, "a@x.com", stored.OwnerEmail)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))

	stored, balance, err = log.Append(ctx, txn(domain.Debit, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.ID)
	assert.True(t, balance.Equal(decimal.NewFromInt(70)))

	_, balance, err = log.Append(ctx, txn(domain.Debit, 71))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	assert.True(t, balance.Equal(decimal.NewFromInt(70)))

	state, err := log.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.Balance.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, int64(2), state.Count)
	assert.Equal(t, int64(2), state.LastID)

	txns, err := log.List(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, int64(2), txns[0].ID)
	assert.Equal(t, int64(1), txns[1].ID)

	require.NoError(t, log.Close())
	require.NoError(t, log.Close())
	assert.Equal(t, 0, store.OpenHandles())
}

func TestStore_IDsIncreaseAcrossOwners(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	alice, err := store.OpenTransactionLog(ctx, "a@x.com")
	require.NoError(t, err)
	bob, err := store.OpenTransactionLog(ctx, "b@x.com")
	require.NoError(t, err)

	first, _, err := alice.Append(ctx, txn(domain.Credit, 1))
	require.NoError(t, err)
	second, _, err := bob.Append(ctx, txn(domain.Credit, 1))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	bobTxns, err := bob.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bobTxns, 1)
}
