package ingest

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsLedger reads the ledger through the Sheets API v4.
type SheetsLedger struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
	loc           *time.Location
}

// NewSheetsLedger builds a Sheets client. readRange defaults to the whole
// sheet named sheetName.
func NewSheetsLedger(ctx context.Context, spreadsheetID, sheetName, readRange string, loc *time.Location, opts ...option.ClientOption) (*SheetsLedger, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	if readRange == "" {
		readRange = sheetName
	}
	return &SheetsLedger{svc: svc, spreadsheetID: spreadsheetID, readRange: readRange, loc: loc}, nil
}

func (s *SheetsLedger) FetchLedger(ctx context.Context) ([]RawRow, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sales sheet: %w", err)
	}
	return rowsFromMatrix(resp.Values, s.loc), nil
}
