package handlers

import (
	"context"
	"errors"

	"github.com/azrs7/Login/internal/apperrors"
	"github.com/azrs7/Login/internal/core/services"
	"github.com/azrs7/Login/internal/utils"
	"github.com/azrs7/Login/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TransactionMenu serves the logged-in menu until Logout or end of input.
// The session is always logged out when it returns.
func (h *Shell) TransactionMenu(ctx context.Context) (err error) {
	defer func() {
		if h.session.State() != services.LoggedIn {
			return
		}
		if lerr := h.session.Logout(ctx); lerr != nil && err == nil {
			err = lerr
		}
	}()

	h.printf("Current balance: %s\n", utils.FormatAmount(h.session.Balance()))
	for {
		h.println("\n==Transaction Menu==")
		h.println("1. Debit\n2. Credit\n3. History\n4. Logout")
		choice, ok := h.prompt("> ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			h.handleDebit(ctx)
		case "2":
			h.handleCredit(ctx)
		case "3":
			h.showHistory(ctx)
		case "4":
			if err := h.session.Logout(ctx); err != nil {
				h.reportFailure(ctx, "Logout failed", err)
				return nil
			}
			h.println("Logged out and DB connection closed.")
			return nil
		default:
			h.println("Invalid choice.")
		}
	}
}

// readTransaction prompts for an amount and a description.
func (h *Shell) readTransaction() (decimal.Decimal, string, bool) {
	amountStr, ok := h.prompt("Enter amount: ")
	if !ok {
		return decimal.Zero, "", false
	}
	desc, ok := h.prompt("Description: ")
	if !ok {
		return decimal.Zero, "", false
	}
	amount, err := accounting.ParseAmount(amountStr)
	if err != nil {
		// An unparseable amount is rejected like an out-of-range one.
		return decimal.Zero, desc, true
	}
	return amount, desc, true
}

func (h *Shell) handleDebit(ctx context.Context) {
	h.println("== Debit ==")
	amount, desc, ok := h.readTransaction()
	if !ok {
		return
	}
	balance, err := h.session.Debit(ctx, amount, desc)
	if err != nil {
		h.reportTransactionError(ctx, err)
		return
	}
	h.printf("Debit recorded. Balance: %s\n", utils.FormatAmount(balance))
}

func (h *Shell) handleCredit(ctx context.Context) {
	h.println("== Credit ==")
	amount, desc, ok := h.readTransaction()
	if !ok {
		return
	}
	balance, err := h.session.Credit(ctx, amount, desc)
	if err != nil {
		h.reportTransactionError(ctx, err)
		return
	}
	h.printf("Credit recorded. Balance: %s\n", utils.FormatAmount(balance))
}

func (h *Shell) reportTransactionError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidDescription):
		h.println("Invalid input.")
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		h.println("Insufficient balance.")
	default:
		h.reportFailure(ctx, "Transaction failed", err)
	}
}

func (h *Shell) showHistory(ctx context.Context) {
	h.println("== Transaction History ==")
	txns, err := h.session.History(ctx)
	if err != nil {
		h.reportFailure(ctx, "Failed to show history", err)
		return
	}
	RenderHistory(h.out, txns)
}
