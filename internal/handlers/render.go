package handlers

import (
	"fmt"
	"io"

	"github.com/azrs7/Login/internal/core/domain"
	"github.com/azrs7/Login/internal/dto"
)

// RenderHistory writes txns as a fixed-width table in the order given.
func RenderHistory(w io.Writer, txns []domain.Transaction) {
	fmt.Fprintf(w, "%-3s | %-6s | %-8s | %s\n", "ID", "Type", "Amount", "Description")
	fmt.Fprintln(w, "-----------------------------------------")
	for _, row := range dto.ToTransactionResponses(txns) {
		fmt.Fprintf(w, "%-3d | %-6s | %8s | %s\n", row.ID, row.Type, row.Amount, row.Description)
	}
}
