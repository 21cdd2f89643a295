package ingest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXLedgerFetch(t *testing.T) {
	path := writeWorkbook(t, "SUM", [][]any{
		{ColContact, ColDate, ColCategory, ColNewCustomer, ColChannel, ColP1, ColUpP1},
		{"0812345678", 45444, "Shoes", "TRUE", "Facebook", 1000, nil},
		{"0812345678", "2024-06-03", "Shoes,Bags", "", "Facebook", nil, 200},
	})

	raw, err := NewXLSXLedger(path, "SUM", time.UTC).FetchLedger(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 2)

	tx := MapRows(raw, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), tx[0].Date)
	assert.True(t, tx[0].NewCustomer)
	assert.InDelta(t, 1000, tx[0].P1, 1e-9)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), tx[1].Date)
	assert.InDelta(t, 200, tx[1].UpP1, 1e-9)
	assert.Equal(t, "Shoes,Bags", tx[1].Categories)
}

func TestXLSXLedgerFallsBackToFirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]any{{ColContact}, {"081"}})
	raw, err := NewXLSXLedger(path, "Missing", time.UTC).FetchLedger(context.Background())
	require.NoError(t, err)
	// Sheet1 is first and empty
	assert.Empty(t, raw)
}

func TestXLSXLedgerMissingFile(t *testing.T) {
	_, err := NewXLSXLedger(filepath.Join(t.TempDir(), "nope.xlsx"), "SUM", time.UTC).FetchLedger(context.Background())
	require.Error(t, err)
}
