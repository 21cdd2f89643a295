package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

const gvizBody = `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","status":"ok","table":{
 "cols":[{"id":"A","label":"เบอร์ติดต่อ","type":"number"},{"id":"B","label":"วันที่","type":"date"},
         {"id":"C","label":"หมวดหมู่","type":"string"},{"id":"D","label":"ลูกค้าใหม่","type":"boolean"},
         {"id":"E","label":"","type":"string"},{"id":"F","label":"P1","type":"number"}],
 "rows":[
  {"c":[{"v":8.12345678E8,"f":"812345678"},{"v":"Date(2024,5,1)","f":"1/6/2024"},{"v":"Shoes"},{"v":true},{"v":"Facebook"},{"v":1000}]},
  {"c":[{"v":812345678},null,{"v":"Bags"},{"v":false},null,{"v":null}]},
  {"c":[{"v":8.12345678E8},{"v":"Date(2024,5,2)"},{"v":"Watches"},{"v":false},{"v":"Line"},{"v":1.2345E7,"f":"12,345,000"}]}
 ]}});`

func TestParseGviz(t *testing.T) {
	rows, err := ParseGviz([]byte(gvizBody))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Shoes", rows[0][ColCategory])
	assert.Equal(t, "Facebook", rows[0]["E"])
	assert.Equal(t, true, rows[0][ColNewCustomer])
	_, ok := rows[1][ColDate]
	assert.False(t, ok)

	loc := time.UTC
	tx := MapRows(rows, loc)
	assert.Equal(t, "812345678", tx[0].Contact)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, loc), tx[0].Date)
	assert.True(t, tx[0].NewCustomer)
	assert.InDelta(t, 1000, tx[0].P1, 1e-9)
	assert.False(t, tx[1].HasDate())
	assert.Zero(t, tx[1].P1)

	// large cells come back in exponent form
	assert.Equal(t, "812345678", tx[1].Contact)
	assert.Equal(t, "812345678", tx[2].Contact)
	assert.InDelta(t, 12345000, tx[2].P1, 1e-9)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, loc), tx[2].Date)
}

func TestParseGvizExponentAmounts(t *testing.T) {
	rows, err := ParseGviz([]byte(`google.visualization.Query.setResponse({"status":"ok","table":{
	 "cols":[{"id":"A","label":"P1"},{"id":"B","label":"ยอดอัพ P1"},{"id":"C","label":"ยอดอัพ P2"}],
	 "rows":[{"c":[{"v":1.0E7},{"v":2.5E7},{"v":1e3}]}]}});`))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	tx := MapRow(rows[0], time.UTC)
	assert.InDelta(t, 1e7, tx.P1, 1e-9)
	assert.InDelta(t, 2.5e7, tx.UpP1, 1e-9)
	assert.InDelta(t, 1000, tx.UpP2, 1e-9)
	assert.InDelta(t, 3.6e7, tx.Revenue(), 1e-9)
}

func TestParseGvizErrors(t *testing.T) {
	_, err := ParseGviz([]byte(`google.visualization.Query.setResponse({"status":"error","errors":[{"reason":"access_denied","message":"Access denied","detailed_message":"Sheet is private"}]});`))
	require.EqualError(t, err, "sales sheet: Sheet is private")

	_, err = ParseGviz([]byte(`<html>login</html>`))
	require.Error(t, err)
}

func TestGvizLedgerFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(gvizBody))
	}))
	defer srv.Close()

	rows, err := NewGvizLedger(NewHTTPClient(time.Second), srv.URL, utils.NewBackoff(0, 0)).FetchLedger(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
