package handlers

import (
	"fmt"

	"github.com/azrs7/Login/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const historySheet = "History"

// ExportHistoryXLSX writes txns, in the order given, to an .xlsx workbook at
// path, with the balance on the row after the last transaction.
func ExportHistoryXLSX(path string, txns []domain.Transaction, balance decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"ID", "Type", "Amount", "Description", "Created At"}
	if err := f.SetSheetRow(historySheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, txn := range txns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			txn.ID,
			txn.Kind.Label(),
			txn.Amount.InexactFloat64(),
			txn.Description,
			txn.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(historySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", txn.ID, err)
		}
	}

	totalRow := len(txns) + 2
	totalCell, err := excelize.CoordinatesToCellName(2, totalRow)
	if err != nil {
		return err
	}
	total := []any{"Balance", balance.InexactFloat64()}
	if err := f.SetSheetRow(historySheet, totalCell, &total); err != nil {
		return fmt.Errorf("write balance: %w", err)
	}

	// Two decimal places for the amount column, as on screen.
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}
	lastCell, err := excelize.CoordinatesToCellName(3, totalRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(historySheet, "C2", lastCell, style); err != nil {
		return fmt.Errorf("style amounts: %w", err)
	}

	f.SetColWidth(historySheet, "A", "A", 6)
	f.SetColWidth(historySheet, "B", "B", 10)
	f.SetColWidth(historySheet, "C", "C", 14)
	f.SetColWidth(historySheet, "D", "D", 40)
	f.SetColWidth(historySheet, "E", "E", 20)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
