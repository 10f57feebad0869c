package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is a Debit or a Credit.
// The direction of a transaction is carried by its kind, never by the sign of its amount.
type TransactionKind string

const (
	Debit  TransactionKind = "DEBIT"
	Credit TransactionKind = "CREDIT"
)

// MaxDescriptionLength is the longest description, in characters, a transaction may carry.
const MaxDescriptionLength = 100

// MaxDebitAmount is the largest amount a single debit may withdraw.
var MaxDebitAmount = decimal.NewFromInt(1_000_000)

// Label returns the display form of the kind ("Debit" or "Credit").
func (k TransactionKind) Label() string {
	switch k {
	case Debit:
		return "Debit"
	case Credit:
		return "Credit"
	}
	return string(k)
}

// Transaction is one immutable entry in an identity's append-only log.
type Transaction struct {
	ID          int64           `json:"id"`          // Assigned by storage, increasing in insertion order
	OwnerEmail  string          `json:"ownerEmail"`  // FK -> Identity.Email
	Kind        TransactionKind `json:"kind"`        // DEBIT or CREDIT
	Amount      decimal.Decimal `json:"amount"`      // Always positive
	Description string          `json:"description"` // At most MaxDescriptionLength characters
	CreatedAt   time.Time       `json:"createdAt"`
}

// LedgerState summarises an owner's log as persisted.
type LedgerState struct {
	Balance       decimal.Decimal
	Count         int64
	LastID        int64
	LastCreatedAt time.Time
}
