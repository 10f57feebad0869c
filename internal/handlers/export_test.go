package handlers_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/azrs7/Login/internal/core/domain"
	"github.com/azrs7/Login/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleHistory() []domain.Transaction {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return []domain.Transaction{
		{ID: 2, OwnerEmail: "a@x.com", Kind: domain.Debit, Amount: decimal.NewFromInt(30), Description: "rent", CreatedAt: at.Add(time.Hour)},
		{ID: 1, OwnerEmail: "a@x.com", Kind: domain.Credit, Amount: decimal.NewFromInt(100), Description: "salary", CreatedAt: at},
	}
}

func TestExportHistoryXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")

	err := handlers.ExportHistoryXLSX(path, sampleHistory(), decimal.NewFromInt(70))
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("History")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"ID", "Type", "Amount", "Description", "Created At"}, rows[0])
	assert.Equal(t, []string{"2", "Debit", "30.00", "rent", "2024-03-01 10:30:00"}, rows[1])
	assert.Equal(t, []string{"1", "Credit", "100.00", "salary", "2024-03-01 09:30:00"}, rows[2])
	assert.Equal(t, []string{"", "Balance", "70.00"}, rows[3])
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	handlers.RenderHistory(&buf, sampleHistory())

	assert.Equal(t,
		"ID  | Type   | Amount   | Description\n"+
			"-----------------------------------------\n"+
			"2   | Debit  |    30.00 | rent\n"+
			"1   | Credit |   100.00 | salary\n",
		buf.String())
}

func TestRenderHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	handlers.RenderHistory(&buf, nil)
	assert.Equal(t, "ID  | Type   | Amount   | Description\n-----------------------------------------\n", buf.String())
}
