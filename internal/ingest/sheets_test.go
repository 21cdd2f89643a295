package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestSheetsLedgerFetch(t *testing.T) {
	var gotPath, gotRender, gotDates string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRender = r.URL.Query().Get("valueRenderOption")
		gotDates = r.URL.Query().Get("dateTimeRenderOption")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"range":"SUM!A1:F3","majorDimension":"ROWS","values":[
			["เบอร์ติดต่อ","วันที่","หมวดหมู่","P1","ยอดอัพ P1"],
			["0812345678",45444,"Shoes",1000],
			["0812345678",45446,"Shoes,Bags","",200]
		]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	l, err := NewSheetsLedger(ctx, "sheet-id", "SUM", "", time.UTC,
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	raw, err := l.FetchLedger(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/v4/spreadsheets/sheet-id/values/"), gotPath)
	assert.Equal(t, "UNFORMATTED_VALUE", gotRender)
	assert.Equal(t, "SERIAL_NUMBER", gotDates)

	tx := MapRows(raw, time.UTC)
	require.Len(t, tx, 2)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), tx[0].Date)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), tx[1].Date)
	assert.InDelta(t, 200, tx[1].UpP1, 1e-9)
}

func TestSheetsLedgerSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	l, err := NewSheetsLedger(ctx, "sheet-id", "SUM", "SUM!A:J", time.UTC,
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	_, err = l.FetchLedger(ctx)
	require.ErrorContains(t, err, "does not have permission")
}
