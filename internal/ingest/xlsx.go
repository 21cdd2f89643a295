package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSXLedger reads the ledger from an exported workbook on disk.
type XLSXLedger struct {
	path  string
	sheet string
	loc   *time.Location
}

func NewXLSXLedger(path, sheet string, loc *time.Location) *XLSXLedger {
	return &XLSXLedger{path: path, sheet: sheet, loc: loc}
}

func (x *XLSXLedger) FetchLedger(ctx context.Context) ([]RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := x.sheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", x.path)
		}
		sheet = list[0]
	}
	// raw values keep date cells as day serials
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	grid := make([][]any, len(rows))
	for i, r := range rows {
		cells := make([]any, len(r))
		for j, v := range r {
			cells[j] = v
		}
		grid[i] = cells
	}
	return rowsFromMatrix(grid, x.loc), nil
}
