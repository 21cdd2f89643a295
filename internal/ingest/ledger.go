package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/AngelCh415/FUNNEL_GO/internal/models"
	"github.com/AngelCh415/FUNNEL_GO/internal/sales"
)

// Sales ledger column headers.
const (
	ColContact     = "เบอร์ติดต่อ"
	ColDate        = "วันที่"
	ColCategory    = "หมวดหมู่"
	ColNewCustomer = "ลูกค้าใหม่"
	ColChannel     = "ช่องทาง"
	ColCustomer    = "ชื่อลูกค้า"
	ColP1          = "P1"
	ColUpP1        = "ยอดอัพ P1"
	ColUpP2        = "ยอดอัพ P2"
	ColP2          = "P2"
)

// RawRow is one ledger row keyed by column header.
type RawRow map[string]any

// LedgerProvider returns the whole sales ledger in sheet order.
type LedgerProvider interface {
	FetchLedger(ctx context.Context) ([]RawRow, error)
}

// MapRow coerces a raw row into a Transaction. Nothing is rejected: bad
// numbers become 0 and an unreadable date leaves Date zero.
func MapRow(raw RawRow, loc *time.Location) models.Transaction {
	date, _ := sales.ParseDate(raw[ColDate], loc)
	return models.Transaction{
		Contact:     cellString(raw[ColContact]),
		Customer:    cellString(raw[ColCustomer]),
		Date:        date,
		Categories:  cellString(raw[ColCategory]),
		NewCustomer: sales.IsNewCustomerFlag(raw[ColNewCustomer]),
		Channel:     cellString(raw[ColChannel]),
		P1:          sales.ToNumber(raw[ColP1]),
		UpP1:        sales.ToNumber(raw[ColUpP1]),
		UpP2:        sales.ToNumber(raw[ColUpP2]),
		P2Lead:      cellString(raw[ColP2]),
	}
}

func MapRows(raw []RawRow, loc *time.Location) []models.Transaction {
	out := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		out = append(out, MapRow(r, loc))
	}
	return out
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(sales.DayLayout)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// rowsFromMatrix turns a header-first grid into keyed rows. Blank header
// cells and fully empty rows are skipped.
func rowsFromMatrix(grid [][]any, loc *time.Location) []RawRow {
	if len(grid) == 0 {
		return nil
	}
	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = cellString(h)
	}
	out := make([]RawRow, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := RawRow{}
		for i, v := range cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
				continue
			}
			if v == nil {
				continue
			}
			row[headers[i]] = v
		}
		if len(row) == 0 {
			continue
		}
		if d, ok := row[ColDate]; ok {
			row[ColDate] = serialDate(d, loc)
		}
		out = append(out, row)
	}
	return out
}

// serialDate converts spreadsheet day serials (1900 date system) to a
// calendar day in loc. Other values pass through untouched.
func serialDate(v any, loc *time.Location) any {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return v
		}
		f = p
	default:
		return v
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return v
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}
