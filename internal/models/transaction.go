package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted row of one log entry.
// Amount is stored as text in SQLite and NUMERIC in PostgreSQL so no binary
// floating-point value ever reaches the balance.
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;index:idx_transactions_owner_id,priority:2" db:"id"`
	OwnerEmail  string          `gorm:"size:320;not null;index:idx_transactions_owner_id,priority:1" db:"owner_email"`
	Kind        string          `gorm:"size:16;not null" db:"kind"`
	Amount      decimal.Decimal `gorm:"type:text;not null" db:"amount"`
	Description string          `gorm:"size:100;not null" db:"description"`
	CreatedAt   time.Time       `gorm:"not null" db:"created_at"`
}

// TableName pins the gorm table name.
func (Transaction) TableName() string { return "transactions" }
