package pgsql

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	portsrepo "github.com/azrs7/Login/internal/core/ports/repositories"
	"github.com/azrs7/Login/internal/models"
	"github.com/azrs7/Login/internal/utils/accounting"
	"github.com/azrs7/Login/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const balanceQuery = `
	SELECT COALESCE(SUM(CASE WHEN kind = 'CREDIT' THEN amount ELSE -amount END), 0),
	       COUNT(*),
	       COALESCE(MAX(id), 0),
	       COALESCE(MAX(created_at), 'epoch'::timestamptz)
	FROM transactions
	WHERE owner_email = $1;
`

type PgxTransactionLogOpener struct {
	pool *pgxpool.Pool
}

func newPgxTransactionLogOpener(pool *pgxpool.Pool) portsrepo.TransactionLogOpener {
	return &PgxTransactionLogOpener{pool: pool}
}

var _ portsrepo.TransactionLogOpener = (*PgxTransactionLogOpener)(nil)

// OpenTransactionLog acquires a dedicated pooled connection for the handle.
// The connection goes back to the pool on Close.
func (o *PgxTransactionLogOpener) OpenTransactionLog(ctx context.Context, ownerEmail string) (portsrepo.TransactionLog, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &PgxTransactionLog{conn: conn, owner: ownerEmail}, nil
}

// PgxTransactionLog is an owner-scoped handle holding one pooled connection.
type PgxTransactionLog struct {
	mu    sync.Mutex
	conn  *pgxpool.Conn
	owner string
}

var _ portsrepo.TransactionLog = (*PgxTransactionLog)(nil)

func (l *PgxTransactionLog) Owner() string { return l.owner }

func (l *PgxTransactionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		l.conn.Release()
		l.conn = nil
	}
	return nil
}

func (l *PgxTransactionLog) acquired() (*pgxpool.Conn, error) {
	if l.conn == nil {
		return nil, fmt.Errorf("transaction log for %s is closed", l.owner)
	}
	return l.conn, nil
}

func (l *PgxTransactionLog) State(ctx context.Context) (domain.LedgerState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	conn, err := l.acquired()
	if err != nil {
		return domain.LedgerState{}, err
	}
	return scanState(conn.QueryRow(ctx, balanceQuery, l.owner), l.owner)
}

func scanState(row pgx.Row, owner string) (domain.LedgerState, error) {
	var state domain.LedgerState
	if err := row.Scan(&state.Balance, &state.Count, &state.LastID, &state.LastCreatedAt); err != nil {
		return domain.LedgerState{}, fmt.Errorf("failed to aggregate transactions for %s: %w", owner, err)
	}
	if state.Count == 0 {
		state.LastCreatedAt = time.Time{}
	}
	state.LastCreatedAt = state.LastCreatedAt.UTC()
	return state, nil
}

func (l *PgxTransactionLog) List(ctx context.Context) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	conn, err := l.acquired()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_email, kind, amount, description, created_at
		FROM transactions
		WHERE owner_email = $1
		ORDER BY id DESC;
	`
	rows, err := conn.Query(ctx, query, l.owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %s: %w", l.owner, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.ID, &m.OwnerEmail, &m.Kind, &m.Amount, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// Append serialises writers per owner with a transaction-scoped advisory lock,
// then checks the persisted balance and inserts inside the same transaction.
func (l *PgxTransactionLog) Append(ctx context.Context, txn domain.Transaction) (domain.Transaction, decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	conn, err := l.acquired()
	if err != nil {
		return domain.Transaction{}, decimal.Zero, err
	}
	txn.OwnerEmail = l.owner

	tx, err := conn.Begin(ctx)
	if err != nil {
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Will be ignored if transaction is committed successfully
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, l.owner); err != nil {
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("failed to lock ledger for %s: %w", l.owner, err)
	}

	state, err := scanState(tx.QueryRow(ctx, balanceQuery, l.owner), l.owner)
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

	m := mapping.ToModelTransaction(txn)
	insert := `
		INSERT INTO transactions (owner_email, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, insert, m.OwnerEmail, m.Kind, m.Amount, m.Description, m.CreatedAt).Scan(&m.ID); err != nil {
		return domain.Transaction{}, state.Balance, fmt.Errorf("failed to insert transaction for %s: %w", l.owner, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Transaction{}, state.Balance, fmt.Errorf("failed to commit transaction for %s: %w", l.owner, err)
	}
	return mapping.ToDomainTransaction(m), newBalance, nil
}
