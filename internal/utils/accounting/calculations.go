package accounting

import (
	"fmt"
	"math"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the balance sign to a transaction amount:
// CREDIT -> Positive (+), DEBIT -> Negative (-).
// This is used in both services and repositories to ensure consistent ledger logic.
func CalculateSignedAmount(kind domain.TransactionKind, amount decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case domain.Credit:
		return amount, nil
	case domain.Debit:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s'", kind)
	}
}

// CalculateBalance derives a balance from a set of transactions.
func CalculateBalance(transactions []domain.Transaction) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range transactions {
		signed, err := CalculateSignedAmount(txn.Kind, txn.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("error calculating signed amount for transaction %d: %w", txn.ID, err)
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}

// AmountFromFloat converts a floating display value into a decimal amount.
// NaN and infinities are rejected with apperrors.ErrInvalidAmount.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return decimal.NewFromFloat(f), nil
}

// ParseAmount parses user input such as "100" or "12.50" into a decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, s)
	}
	return d, nil
}
