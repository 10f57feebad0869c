package dto

import (
	"github.com/azrs7/Login/internal/core/domain"
	"github.com/azrs7/Login/internal/utils"
)

// TransactionResponse is the display form of one history row.
type TransactionResponse struct {
	ID          int64
	Type        string
	Amount      string
	Description string
	CreatedAt   string
}

// ToTransactionResponse converts a domain.Transaction to its display form
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Type:        txn.Kind.Label(),
		Amount:      utils.FormatAmount(txn.Amount),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ToTransactionResponses converts a slice of domain.Transaction, keeping its order
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}
