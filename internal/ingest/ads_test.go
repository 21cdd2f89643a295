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

const adsPayload = `{
  "success": true,
  "data": {
    "campaigns": [
      {"id": "c1", "name": "Summer", "status": "ACTIVE",
       "insights": {"spend": "1,200.50", "impressions": 10000, "purchases": "12", "messaging_conversations": 30, "cpm": 120.05, "ctr": "1.5"},
       "ads": [{"id": "a1", "name": "Video", "thumbnail_url": "https://img/1.png", "insights": {"spend": 700}}]},
      {"id": "c2", "name": "Winter", "status": "PAUSED", "insights": null, "ads": []}
    ],
    "dailySpend": [
      {"date": "2024-06-01", "spend": 600.25},
      {"date": "not a date", "spend": 1},
      {"date": "2024-06-02", "spend": "600.25"}
    ]
  },
  "totals": {"spend": 1200.5, "impressions": 1.25E7, "purchases": 12, "messaging_conversations": 30, "cpm": 120.05, "ctr": 1.5}
}`

func TestAdsClientFetch(t *testing.T) {
	var gotPath, gotSince, gotUntil string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSince = r.URL.Query().Get("since")
		gotUntil = r.URL.Query().Get("until")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(adsPayload))
	}))
	defer srv.Close()

	a := NewAdsClient(NewHTTPClient(time.Second), srv.URL+"/", utils.NewBackoff(0, 0))
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	rep, err := a.FetchAds(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, "/databillRam", gotPath)
	assert.Equal(t, "01-06-2024", gotSince)
	assert.Equal(t, "30-06-2024", gotUntil)

	require.Len(t, rep.Campaigns, 2)
	c := rep.Campaigns[0]
	assert.Equal(t, "Summer", c.Name)
	assert.InDelta(t, 1200.5, c.Insights.Spend, 1e-9)
	assert.InDelta(t, 12, c.Insights.Purchases, 1e-9)
	assert.InDelta(t, 1.5, c.Insights.CTR, 1e-9)
	require.Len(t, c.Ads, 1)
	assert.Equal(t, "https://img/1.png", c.Ads[0].ThumbnailURL)
	assert.InDelta(t, 700, c.Ads[0].Insights.Spend, 1e-9)
	assert.Zero(t, rep.Campaigns[1].Insights.Spend)

	assert.InDelta(t, 12500000, rep.Totals.Impressions, 1e-9)
	require.Len(t, rep.DailySpend, 2)
	assert.Equal(t, 2, rep.DailySpend[1].Date.Day())
	assert.InDelta(t, 600.25, rep.DailySpend[1].Spend, 1e-9)
}

func TestAdsClientErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"non-2xx", http.StatusInternalServerError, "boom", "Ads API error (500) - boom"},
		{"failure with message", http.StatusOK, `{"success": false, "error": "token expired"}`, "token expired"},
		{"failure without message", http.StatusOK, `{"success": false}`, "Unknown API error from main Ads fetch."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			a := NewAdsClient(NewHTTPClient(time.Second), srv.URL, utils.NewBackoff(0, 0))
			_, err := a.FetchAds(context.Background(), time.Now(), time.Now())
			require.EqualError(t, err, tc.want)
		})
	}
}
